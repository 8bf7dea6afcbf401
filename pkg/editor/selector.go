package editor

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// Selector is the structural query compiled from a descriptor: the tag
// under one of the valid parents, or the tag anywhere under the root when
// the descriptor is root-allowed.
type Selector struct {
	tag     string
	parents []string
	root    bool
}

// BuildSelector compiles d. It fails for descriptors that cannot be placed
// anywhere.
func BuildSelector(d *schema.Descriptor) (*Selector, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Selector{
		tag:     d.TagName,
		parents: d.ValidParents,
		root:    d.RootAllowed,
	}, nil
}

// Match reports whether el is selected when the query is evaluated over the
// subtree of root. root itself is never selected.
func (s *Selector) Match(el, root *html.Node) bool {
	if !hostdom.IsElement(el, s.tag) || el == root || !hostdom.Contains(root, el) {
		return false
	}
	if s.root {
		return true
	}
	parent := el.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return false
	}
	for _, p := range s.parents {
		if parent.Data == p {
			return true
		}
	}
	return false
}

// String renders the selector in CSS syntax.
func (s *Selector) String() string {
	parts := make([]string, 0, len(s.parents)+1)
	for _, p := range s.parents {
		parts = append(parts, p+" > "+s.tag)
	}
	if s.root {
		parts = append(parts, s.tag)
	}
	return strings.Join(parts, ", ")
}

// SelectAll returns the elements under context matched by s, in document
// order. Matching is still relative to root.
func SelectAll(context, root *html.Node, s *Selector) []*html.Node {
	var out []*html.Node
	for _, el := range hostdom.Elements(context) {
		if s.Match(el, root) {
			out = append(out, el)
		}
	}
	return out
}

// Matches reports whether el satisfies d relative to root. Invalid
// descriptors match nothing.
func Matches(el *html.Node, d *schema.Descriptor, root *html.Node) bool {
	s, err := BuildSelector(d)
	if err != nil {
		return false
	}
	return s.Match(el, root)
}
