package hostdom

import (
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// IsElement reports whether n is an element, optionally with the given tag.
func IsElement(n *html.Node, tag string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return tag == "" || n.Data == tag
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	return dom.GetAttribute(n, key)
}

// HasAttr reports whether n carries attribute key.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets attribute key on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes attribute key from n.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// AddClass appends class to the class attribute of n unless present.
func AddClass(n *html.Node, class string) {
	if dom.HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(dom.GetClasses(n), class), " "))
}

// RemoveClass removes class from n, dropping an emptied class attribute.
func RemoveClass(n *html.Node, class string) {
	if !HasAttr(n, "class") {
		return
	}
	var kept []string
	for _, c := range dom.GetClasses(n) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// IsContentEditable reports whether n accepts rich text entry.
func IsContentEditable(n *html.Node) bool {
	v, ok := Attr(n, "contenteditable")
	return ok && v == "true"
}

// SetContentEditable toggles rich text entry on n.
func SetContentEditable(n *html.Node, editable bool) {
	if editable {
		SetAttr(n, "contenteditable", "true")
		return
	}
	RemoveAttr(n, "contenteditable")
}

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	return dom.CollectText(n)
}

// SetTextContent replaces all children of n with a single text node.
func SetTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// IsBlank reports whether n holds no text or only the placeholder.
func IsBlank(n *html.Node) bool {
	text := TextContent(n)
	return text == "" || text == Placeholder
}

// Contains reports whether n is ancestor or lies under it.
func Contains(ancestor, n *html.Node) bool {
	if ancestor == nil || n == nil {
		return false
	}
	return n == ancestor || dom.ContainsNode(ancestor, func(c *html.Node) bool {
		return c == n
	})
}

// InsertAfter places n right after ref under ref's parent.
func InsertAfter(ref, n *html.Node) {
	ref.Parent.InsertBefore(n, ref.NextSibling)
}

// Elements returns the element descendants of context in document order,
// excluding context itself.
func Elements(context *html.Node) []*html.Node {
	if context == nil {
		return nil
	}
	return dom.FindAllNodes(context, func(n *html.Node) bool {
		return n.Type == html.ElementNode
	})
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func textNodes(n *html.Node) []*html.Node {
	return dom.FindAllNodes(n, func(c *html.Node) bool {
		return c.Type == html.TextNode
	})
}
