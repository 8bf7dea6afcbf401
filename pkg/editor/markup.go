package editor

import (
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

var markerAttrs = []string{AttrReady, AttrEditable, AttrInsertable, "contenteditable"}

// StripMarkup removes everything the editor wrote on the tree under n: the
// toolbar, binding markers, the root class and the placeholder text of editable
// blocks. The result
// is the plain document. Stripped elements are no longer bound.
func StripMarkup(n *html.Node) {
	var toolbars []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if hostdom.HasAttr(c, AttrInsertDialog) {
				toolbars = append(toolbars, c)
				continue
			}
			clean(c)
			walk(c.FirstChild)
		}
	}
	clean(n)
	walk(n.FirstChild)

	for _, t := range toolbars {
		t.Parent.RemoveChild(t)
	}
}

func clean(el *html.Node) {
	if el.Type != html.ElementNode {
		return
	}
	editable := hostdom.IsContentEditable(el)
	for _, a := range markerAttrs {
		hostdom.RemoveAttr(el, a)
	}
	hostdom.RemoveClass(el, RootClass)
	if editable && holdsOnlyPlaceholder(el) {
		hostdom.SetTextContent(el, "")
	}
}

func holdsOnlyPlaceholder(el *html.Node) bool {
	c := el.FirstChild
	return c != nil && c == el.LastChild && c.Type == html.TextNode && c.Data == hostdom.Placeholder
}
