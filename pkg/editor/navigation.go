package editor

import (
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

// Cursor is the caret position inside an element.
//
// AtEnd is a heuristic: it compares the caret offset with the element's text
// length, and SelectionLength carries the same off-by-one as the text length
// plus one. Without a caret both offsets are zero, so AtStart and AtEnd hold.
type Cursor struct {
	Position        int
	SelectionLength int
	AtStart         bool
	AtEnd           bool
}

// CursorPosition returns where the caret sits inside el.
func CursorPosition(doc *hostdom.Document, el *html.Node) Cursor {
	caret, end := 0, 0
	if off, ok := doc.CaretOffsetIn(el); ok {
		caret = off
		end = len([]rune(hostdom.TextContent(el)))
	}
	return Cursor{
		Position:        caret,
		SelectionLength: end + 1,
		AtStart:         caret == 0,
		AtEnd:           caret == end,
	}
}

// SelectPrevious focuses the editable element right before the focused one
// under context and puts the caret at its end. With wrap it falls back to the
// first editable element when there is nothing before the focused one.
func (e *Editor) SelectPrevious(context *html.Node, wrap bool) bool {
	editables := editablesIn(context)
	if current := e.doc.ActiveIn(context); current != nil {
		var prev *html.Node
		for _, el := range editables {
			if el == current {
				if prev != nil {
					e.moveTo(prev, false)
					return true
				}
				break
			}
			prev = el
		}
	}
	return e.selectFirst(editables, wrap, false)
}

// SelectNext focuses the editable element right after the focused one under
// context and puts the caret at its start. Falls back like SelectPrevious.
func (e *Editor) SelectNext(context *html.Node, wrap bool) bool {
	editables := editablesIn(context)
	if current := e.doc.ActiveIn(context); current != nil {
		for i, el := range editables {
			if el == current {
				if i+1 < len(editables) {
					e.moveTo(editables[i+1], true)
					return true
				}
				break
			}
		}
	}
	return e.selectFirst(editables, wrap, true)
}

func (e *Editor) selectFirst(editables []*html.Node, wrap, toStart bool) bool {
	if !wrap || len(editables) == 0 {
		return false
	}
	e.moveTo(editables[0], toStart)
	return true
}

// moveTo focuses el and places the caret. Caret placement is best effort.
func (e *Editor) moveTo(el *html.Node, toStart bool) {
	if err := e.doc.Focus(el); err != nil {
		e.logger.Printf("WARN: failed to focus <%s>: %v", el.Data, err)
	}
	if err := e.doc.CollapseInto(el, toStart); err != nil {
		e.logger.Printf("WARN: cannot place caret in <%s>: %v", el.Data, err)
	}
}

func editablesIn(context *html.Node) []*html.Node {
	var out []*html.Node
	for _, el := range hostdom.Elements(context) {
		if hostdom.IsContentEditable(el) {
			out = append(out, el)
		}
	}
	return out
}
