// Package hostdom is the host capability surface the editor runs against: an
// in-memory HTML tree with focus, a caret selection and event dispatch.
//
// It models only what the editor consumes. A Document is not safe for
// concurrent use; all calls are expected from a single event loop.
package hostdom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Placeholder is the content given to empty editable blocks so they stay
// visible and selectable.
const Placeholder = "\n"

var (
	// ErrSelectionUnsupported is returned by caret operations on documents
	// created without selection support.
	ErrSelectionUnsupported = errors.New("selection is not supported by this host")

	// ErrNoFocus is returned by input operations when nothing has focus.
	ErrNoFocus = errors.New("no element has focus")
)

// Document owns an HTML tree and the interaction state around it.
type Document struct {
	node      *html.Node
	active    *html.Node
	caret     *Point
	noCaret   bool
	listeners map[*html.Node]map[string][]Listener
}

// Option configures a Document.
type Option func(*Document)

// WithoutSelection creates a document whose host has no selection API.
// Caret placement fails with ErrSelectionUnsupported.
func WithoutSelection() Option {
	return func(d *Document) {
		d.noCaret = true
	}
}

// New wraps an existing tree.
func New(node *html.Node, opts ...Option) *Document {
	d := &Document{
		node:      node,
		listeners: make(map[*html.Node]map[string][]Listener),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse reads an HTML document.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return New(node, opts...), nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Node returns the document node.
func (d *Document) Node() *html.Node {
	return d.node
}

// Body returns the body element, or nil.
func (d *Document) Body() *html.Node {
	return dom.FindFirstNode(d.node, func(n *html.Node) bool {
		return IsElement(n, "body")
	})
}

// ByID returns the first element whose id attribute equals id.
func (d *Document) ByID(id string) *html.Node {
	return dom.FindFirstNode(d.node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && dom.HasID(n, id)
	})
}

// NewElement creates a detached element node for tag.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Remove detaches n from its parent. Focus, caret and listeners inside the
// removed subtree are dropped.
func (d *Document) Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	if d.active != nil && Contains(n, d.active) {
		d.active = nil
	}
	if d.caret != nil && Contains(n, d.caret.Node) {
		d.caret = nil
	}
	for _, c := range dom.AllNodes(n) {
		delete(d.listeners, c)
	}
	dom.RemoveNode(n)
}

// Render writes the outer HTML of n.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// OuterHTML returns n rendered as HTML.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML returns the children of n rendered as HTML.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}
