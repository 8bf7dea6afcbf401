package hostdom

import (
	"golang.org/x/net/html"
)

// Point is a collapsed caret position. For text nodes Offset counts runes;
// for elements it counts child nodes.
type Point struct {
	Node   *html.Node
	Offset int
}

// Caret returns the current caret, if the host has one.
func (d *Document) Caret() (Point, bool) {
	if d.noCaret || d.caret == nil {
		return Point{}, false
	}
	return *d.caret, true
}

// SetCaret moves the caret to p.
func (d *Document) SetCaret(p Point) error {
	if d.noCaret {
		return ErrSelectionUnsupported
	}
	d.caret = &p
	return nil
}

// CollapseInto places the caret at the start or the end of n's content.
func (d *Document) CollapseInto(n *html.Node, toStart bool) error {
	if d.noCaret {
		return ErrSelectionUnsupported
	}
	texts := textNodes(n)
	switch {
	case len(texts) == 0 && toStart:
		d.caret = &Point{Node: n, Offset: 0}
	case len(texts) == 0:
		d.caret = &Point{Node: n, Offset: childCount(n)}
	case toStart:
		d.caret = &Point{Node: texts[0], Offset: 0}
	default:
		last := texts[len(texts)-1]
		d.caret = &Point{Node: last, Offset: runeLen(last.Data)}
	}
	return nil
}

// CaretOffsetIn returns the number of text runes of n preceding the caret.
// ok is false when there is no caret.
func (d *Document) CaretOffsetIn(n *html.Node) (offset int, ok bool) {
	p, ok := d.Caret()
	if !ok {
		return 0, false
	}
	if !Contains(n, p.Node) {
		return 0, true
	}

	if p.Node.Type == html.TextNode {
		for _, t := range textNodes(n) {
			if t == p.Node {
				return offset + min(p.Offset, runeLen(t.Data)), true
			}
			offset += runeLen(t.Data)
		}
		return offset, true
	}

	// Element container: count the text of the children before Offset, then
	// add the text between n and the container.
	i := 0
	for c := p.Node.FirstChild; c != nil && i < p.Offset; c = c.NextSibling {
		offset += runeLen(TextContent(c))
		i++
	}
	for _, t := range textNodes(n) {
		if Contains(p.Node, t) {
			break
		}
		offset += runeLen(t.Data)
	}
	return offset, true
}

// TypeText inserts text at the caret inside the focused element. An element
// holding only the placeholder is cleared first.
func (d *Document) TypeText(text string) error {
	el := d.active
	if el == nil {
		return ErrNoFocus
	}
	if TextContent(el) == Placeholder {
		SetTextContent(el, "")
		d.caret = nil
	}

	var target *html.Node
	offset := 0
	if p, ok := d.Caret(); ok && p.Node.Type == html.TextNode && Contains(el, p.Node) {
		target, offset = p.Node, p.Offset
	} else if p, ok := d.Caret(); ok && p.Node == el && p.Offset == 0 {
		if texts := textNodes(el); len(texts) > 0 {
			target = texts[0]
		}
	} else if texts := textNodes(el); len(texts) > 0 {
		target = texts[len(texts)-1]
		offset = runeLen(target.Data)
	}
	if target == nil {
		target = &html.Node{Type: html.TextNode}
		el.AppendChild(target)
	}

	runes := []rune(target.Data)
	offset = min(max(offset, 0), len(runes))
	target.Data = string(runes[:offset]) + text + string(runes[offset:])
	if !d.noCaret {
		d.caret = &Point{Node: target, Offset: offset + runeLen(text)}
	}
	return nil
}

// deleteRune is the default action of Backspace (before) and Delete (after)
// within a single text node.
func (d *Document) deleteRune(el *html.Node, before bool) {
	p, ok := d.Caret()
	if !ok || p.Node.Type != html.TextNode || !Contains(el, p.Node) {
		return
	}
	runes := []rune(p.Node.Data)
	switch {
	case before && p.Offset > 0 && p.Offset <= len(runes):
		p.Node.Data = string(runes[:p.Offset-1]) + string(runes[p.Offset:])
		d.caret.Offset--
	case !before && p.Offset >= 0 && p.Offset < len(runes):
		p.Node.Data = string(runes[:p.Offset]) + string(runes[p.Offset+1:])
	}
}

func childCount(n *html.Node) int {
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		i++
	}
	return i
}
