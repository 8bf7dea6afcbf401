package hostdom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Event types dispatched by the host.
const (
	EventFocus    = "focus"
	EventBlur     = "blur"
	EventKeyPress = "keypress"
	EventClick    = "click"
)

// Key identifies a key press by its legacy key code.
type Key int

const (
	KeyNone      Key = 0
	KeyBackspace Key = 8
	KeyEnter     Key = 13
	KeyDelete    Key = 46
)

var keyNames = map[Key]string{
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyDelete:    "delete",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey maps a key name to a Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "bs":
		return KeyBackspace, nil
	case "del":
		return KeyDelete, nil
	case "return":
		return KeyEnter, nil
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key: %q", name)
}

// Event is a single input event.
type Event struct {
	Type   string
	Key    Key
	Target *html.Node

	defaultPrevented bool
	stopped          bool
}

// PreventDefault cancels the host's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles an event. A returned error aborts dispatch and is
// reported to whoever triggered the event.
type Listener func(ev *Event) error

// AddEventListener registers fn for events of type typ on n.
func (d *Document) AddEventListener(n *html.Node, typ string, fn Listener) {
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[typ] = append(byType[typ], fn)
}

// ListenerCount returns the number of listeners of type typ on n.
func (d *Document) ListenerCount(n *html.Node, typ string) int {
	return len(d.listeners[n][typ])
}

// Dispatch delivers ev to its target and then to each ancestor until a
// listener stops propagation. Focus and blur do not bubble.
func (d *Document) Dispatch(ev *Event) error {
	bubbles := ev.Type != EventFocus && ev.Type != EventBlur
	for n := ev.Target; n != nil; n = n.Parent {
		for _, fn := range d.listeners[n][ev.Type] {
			if err := fn(ev); err != nil {
				return err
			}
		}
		if ev.stopped || !bubbles {
			break
		}
	}
	return nil
}

// Focusable reports whether n can take input focus.
func Focusable(n *html.Node) bool {
	if !IsElement(n, "") {
		return false
	}
	if IsContentEditable(n) {
		return true
	}
	switch n.Data {
	case "button", "input", "textarea", "select":
		return !HasAttr(n, "disabled")
	}
	return HasAttr(n, "tabindex")
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *html.Node {
	return d.active
}

// ActiveIn returns the focused element if it lies under context.
func (d *Document) ActiveIn(context *html.Node) *html.Node {
	if d.active == nil || d.active == context || !Contains(context, d.active) {
		return nil
	}
	return d.active
}

// Focus moves input focus to n. Non-focusable elements are ignored.
func (d *Document) Focus(n *html.Node) error {
	if !Focusable(n) || d.active == n {
		return nil
	}
	if prev := d.active; prev != nil {
		d.active = nil
		if err := d.Dispatch(&Event{Type: EventBlur, Target: prev}); err != nil {
			return err
		}
	}
	d.active = n
	if !d.noCaret && (d.caret == nil || !Contains(n, d.caret.Node)) {
		d.caret = &Point{Node: n, Offset: 0}
	}
	return d.Dispatch(&Event{Type: EventFocus, Target: n})
}

// Blur drops focus from n if it has it.
func (d *Document) Blur(n *html.Node) error {
	if d.active != n || n == nil {
		return nil
	}
	d.active = nil
	return d.Dispatch(&Event{Type: EventBlur, Target: n})
}

// Click dispatches a click on n. Disabled controls swallow clicks.
func (d *Document) Click(n *html.Node) error {
	if HasAttr(n, "disabled") {
		return nil
	}
	return d.Dispatch(&Event{Type: EventClick, Target: n})
}

// PressKey dispatches a key press to the focused element and runs the
// default action unless a listener prevented it.
func (d *Document) PressKey(k Key) error {
	target := d.active
	if target == nil {
		return ErrNoFocus
	}
	ev := &Event{Type: EventKeyPress, Key: k, Target: target}
	if err := d.Dispatch(ev); err != nil {
		return err
	}
	if ev.defaultPrevented {
		return nil
	}

	switch k {
	case KeyBackspace:
		d.deleteRune(target, true)
	case KeyDelete:
		d.deleteRune(target, false)
	}
	return nil
}
