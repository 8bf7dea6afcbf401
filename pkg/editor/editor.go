// Package editor turns an HTML subtree into an editable document made of
// the blocks of a schema catalog.
//
// Elements are matched against the catalog once, bound to the behavior of
// their descriptor, and marked so they are never bound twice. Editable
// blocks react to Enter, Backspace and Delete; a toolbar inserted before the
// root creates new blocks.
package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// Markers written on the live tree.
const (
	RootClass         = "semantic-editor"
	AttrReady         = "data-ready"
	AttrEditable      = "data-editable"
	AttrInsertable    = "data-insertable"
	AttrInsertDialog  = "data-insert-dialog"
	AttrInsertTag     = "data-insert-tag"
	ToolbarClass      = "semantic-editor-insert"
	attrReadyValue    = "1"
	attrEnabledMarker = "true"
)

var (
	// ErrInvalidRoot is returned when the root cannot be queried.
	ErrInvalidRoot = errors.New("root is not an element")

	// ErrNotInsertable is returned when inserting a block the user may not
	// create.
	ErrNotInsertable = errors.New("block is not insertable")

	// ErrDetached is returned by key handlers invoked on an element with no
	// parent.
	ErrDetached = errors.New("element has no parent")

	// ErrOutsideRoot is returned when an element to bind lies outside the
	// editor root.
	ErrOutsideRoot = errors.New("element is not inside the editor root")

	// ErrNotBound is returned by HandleKey for elements with no editable
	// descriptor.
	ErrNotBound = errors.New("element is not bound to an editable block")
)

// Editor is one mounted editing root.
type Editor struct {
	doc       *hostdom.Document
	root      *html.Node
	registry  *schema.Registry
	selectors []*Selector
	focused   *html.Node
	toolbar   *html.Node
	logger    *log.Logger
}

type options struct {
	registry *schema.Registry
	logger   *log.Logger
}

// Option configures an Editor.
type Option func(*options)

// WithRegistry replaces the default catalog.
func WithRegistry(r *schema.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger sets the logger receiving diagnostics. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New mounts an editor on root. Configuration problems are returned as
// errors and leave the tree untouched.
func New(doc *hostdom.Document, root *html.Node, opts ...Option) (*Editor, error) {
	o := resolve(opts)
	return mount(doc, root, o)
}

// Mount is New for hosts that must never fail: problems are logged and nil
// is returned.
func Mount(doc *hostdom.Document, root *html.Node, opts ...Option) *Editor {
	o := resolve(opts)
	e, err := mount(doc, root, o)
	if err != nil {
		o.logger.Printf("WARN: editor not mounted: %v", err)
		return nil
	}
	return e
}

func resolve(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = schema.Default()
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}

func mount(doc *hostdom.Document, root *html.Node, o options) (*Editor, error) {
	if doc == nil || !hostdom.IsElement(root, "") {
		return nil, ErrInvalidRoot
	}
	if o.registry.Len() == 0 {
		return nil, &schema.ConfigError{Err: schema.ErrEmptyCatalog}
	}

	e := &Editor{
		doc:      doc,
		root:     root,
		registry: o.registry,
		logger:   o.logger,
	}
	for _, d := range o.registry.Descriptors() {
		s, err := BuildSelector(d)
		if err != nil {
			return nil, err
		}
		e.selectors = append(e.selectors, s)
	}

	hostdom.AddClass(root, RootClass)
	BuildToolbar(e)
	e.scan(root)
	return e, nil
}

// Root returns the editing root.
func (e *Editor) Root() *html.Node { return e.root }

// Document returns the host document.
func (e *Editor) Document() *hostdom.Document { return e.doc }

// Registry returns the catalog in use.
func (e *Editor) Registry() *schema.Registry { return e.registry }

// Toolbar returns the insert dialog, or nil before it is built.
func (e *Editor) Toolbar() *html.Node { return e.toolbar }

// FocusedElement returns the last focused editable element, or nil once that
// element has left the root.
func (e *Editor) FocusedElement() *html.Node {
	if e.focused != nil && !hostdom.Contains(e.root, e.focused) {
		e.focused = nil
	}
	return e.focused
}

// Classify returns the first descriptor whose selector matches el.
func (e *Editor) Classify(el *html.Node) *schema.Descriptor {
	descs := e.registry.Descriptors()
	for i, s := range e.selectors {
		if s.Match(el, e.root) {
			return descs[i]
		}
	}
	return nil
}

// Bound reports whether el carries the initialized marker.
func Bound(el *html.Node) bool {
	return hostdom.HasAttr(el, AttrReady)
}

// Editables returns the editable elements under the root in document order.
func (e *Editor) Editables() []*html.Node {
	return editablesIn(e.root)
}

// Bind classifies el and binds it. It reports whether a descriptor matched.
func (e *Editor) Bind(el *html.Node) bool {
	d := e.Classify(el)
	if d == nil {
		return false
	}
	e.bind(el, d)
	return true
}

// Focus moves input focus to el.
func (e *Editor) Focus(el *html.Node) error {
	return e.doc.Focus(el)
}

// Rescan binds every matching element under the root that is not bound yet.
func (e *Editor) Rescan() {
	e.scan(e.root)
}

func (e *Editor) scan(context *html.Node) {
	for _, el := range hostdom.Elements(context) {
		if d := e.Classify(el); d != nil {
			e.bind(el, d)
		}
	}
}

func (e *Editor) bind(el *html.Node, d *schema.Descriptor) {
	if Bound(el) {
		e.logger.Printf("WARN: element <%s> is already initialized", el.Data)
		return
	}
	hostdom.SetAttr(el, AttrReady, attrReadyValue)
	if d.Insertable {
		hostdom.SetAttr(el, AttrInsertable, attrEnabledMarker)
	}
	if d.Editable {
		e.bindEditable(el, d)
	}
}

func (e *Editor) bindEditable(el *html.Node, d *schema.Descriptor) {
	hostdom.SetContentEditable(el, true)
	hostdom.SetAttr(el, AttrEditable, attrEnabledMarker)

	if isWhitespace(hostdom.TextContent(el)) {
		hostdom.SetTextContent(el, hostdom.Placeholder)
	}

	e.doc.AddEventListener(el, hostdom.EventFocus, func(*hostdom.Event) error {
		e.focused = el
		if parent := el.Parent; parent != nil {
			if parent == e.root {
				RefreshToolbar(e, nil)
			} else {
				RefreshToolbar(e, parent)
			}
		}
		return nil
	})

	e.doc.AddEventListener(el, hostdom.EventKeyPress, func(ev *hostdom.Event) error {
		return e.dispatchKey(el, d, ev)
	})
}

// InsertAfter creates a block of type d after ref, or after the focused
// element, or at the end of the root. The new block and everything its
// build hook created are bound, and focus moves to the first editable
// element among them when focus is true.
func (e *Editor) InsertAfter(d *schema.Descriptor, ref *html.Node, focus bool) (*html.Node, error) {
	if !d.Insertable {
		return nil, fmt.Errorf("%w: %s", ErrNotInsertable, d)
	}

	el := hostdom.NewElement(d.TagName)
	d.BuildInto(el)

	switch focused := e.FocusedElement(); {
	case ref != nil && ref.Parent != nil:
		hostdom.InsertAfter(ref, el)
	case focused != nil && focused.Parent != nil:
		hostdom.InsertAfter(focused, el)
	default:
		e.root.AppendChild(el)
	}

	if el == e.root || !hostdom.Contains(e.root, el) {
		e.doc.Remove(el)
		return nil, fmt.Errorf("%w: %s", ErrOutsideRoot, d)
	}

	e.Bind(el)
	e.scan(el)

	if focus {
		target := el
		if !hostdom.IsContentEditable(el) {
			target = dom.FindFirstNode(el, hostdom.IsContentEditable)
		}
		if target != nil {
			if err := e.Focus(target); err != nil {
				return el, err
			}
		}
	}
	return el, nil
}

// remove detaches el and clears the focus handle if it pointed into it.
func (e *Editor) remove(el *html.Node) {
	e.doc.Remove(el)
	if e.focused != nil && hostdom.Contains(el, e.focused) {
		e.focused = nil
	}
}

func isWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}
