package editor

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// keyHandler runs the editing policy of one key for an editable block.
type keyHandler func(e *Editor, el *html.Node, d *schema.Descriptor, ev *hostdom.Event) error

// keyTable maps keys to their block-level policy. Keys not listed keep the
// host's default behavior. Filled in init: the handlers reach back into the
// table through binding.
var keyTable map[hostdom.Key]keyHandler

func init() {
	keyTable = map[hostdom.Key]keyHandler{
		hostdom.KeyEnter:     handleEnter,
		hostdom.KeyBackspace: handleBackspace,
		hostdom.KeyDelete:    handleDelete,
	}
}

func (e *Editor) dispatchKey(el *html.Node, d *schema.Descriptor, ev *hostdom.Event) error {
	h, ok := keyTable[ev.Key]
	if !ok {
		return nil
	}
	return h(e, el, d, ev)
}

// HandleKey runs the key policy for el as if the key had been pressed on it,
// bypassing host dispatch. The host's default action is not run.
func (e *Editor) HandleKey(el *html.Node, k hostdom.Key) error {
	if el.Parent == nil {
		return fmt.Errorf("%w: <%s>", ErrDetached, el.Data)
	}
	d := e.Classify(el)
	if d == nil || !d.Editable || !Bound(el) {
		return fmt.Errorf("%w: <%s>", ErrNotBound, el.Data)
	}
	return e.dispatchKey(el, d, &hostdom.Event{Type: hostdom.EventKeyPress, Key: k, Target: el})
}

// handleEnter creates the next sibling block and focuses it, unless the
// descriptor overrides Enter.
func handleEnter(e *Editor, el *html.Node, d *schema.Descriptor, ev *hostdom.Event) error {
	if el.Parent == nil {
		return fmt.Errorf("%w: <%s>", ErrDetached, el.Data)
	}
	ev.StopPropagation()
	ev.PreventDefault()

	if d.OnEnter != nil {
		return d.OnEnter(el, e)
	}

	sibling := hostdom.NewElement(d.EnterTag())
	hostdom.InsertAfter(el, sibling)

	// Binding needs the final tree position.
	e.Bind(sibling)
	hostdom.SetTextContent(sibling, hostdom.Placeholder)

	return e.Focus(sibling)
}

// handleBackspace removes an empty block, moving focus to the previous
// editable block first.
//
// Nothing stops it from removing the last item of a list or a child its
// parent requires.
func handleBackspace(e *Editor, el *html.Node, _ *schema.Descriptor, ev *hostdom.Event) error {
	return removeEmpty(e, el, ev, e.SelectPrevious)
}

// handleDelete is Backspace towards the next block. On a non-empty block
// with the caret at its end it only swallows the key: merging the next
// block in is not implemented.
func handleDelete(e *Editor, el *html.Node, _ *schema.Descriptor, ev *hostdom.Event) error {
	if el.Parent == nil {
		return fmt.Errorf("%w: <%s>", ErrDetached, el.Data)
	}
	if hostdom.IsBlank(el) {
		return removeEmpty(e, el, ev, e.SelectNext)
	}
	if CursorPosition(e.doc, el).AtEnd {
		ev.StopPropagation()
		ev.PreventDefault()
		e.logger.Printf("WARN: not implemented: merging the next block into <%s>", el.Data)
	}
	return nil
}

func removeEmpty(e *Editor, el *html.Node, ev *hostdom.Event, move func(*html.Node, bool) bool) error {
	if el.Parent == nil {
		return fmt.Errorf("%w: <%s>", ErrDetached, el.Data)
	}
	if !hostdom.IsBlank(el) {
		return nil
	}
	ev.StopPropagation()
	ev.PreventDefault()

	// Blur when there is nowhere to go, so repeated presses cannot wipe
	// the whole document.
	if !move(e.root, false) {
		if err := e.doc.Blur(el); err != nil {
			return err
		}
	}

	e.remove(el)
	return nil
}
