package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/pkg/editor"
	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/md"
)

// Summary is the json export of an edited document.
type Summary struct {
	Title   string       `json:"title,omitempty"`
	Outline []md.Heading `json:"outline"`
	Blocks  []Block      `json:"blocks"`
}

// Block is one bound element of the document.
type Block struct {
	Tag      string `json:"tag"`
	Depth    int    `json:"depth"`
	Editable bool   `json:"editable"`
	Focused  bool   `json:"focused,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Summarize describes the bound blocks under the editor root.
func Summarize(ed *editor.Editor) *Summary {
	root := ed.Root()
	focused := ed.FocusedElement()

	s := &Summary{
		Title:   md.Title(root),
		Outline: md.Outline(root),
		Blocks:  []Block{},
	}
	for _, el := range hostdom.Elements(root) {
		if !editor.Bound(el) {
			continue
		}
		b := Block{
			Tag:      el.Data,
			Depth:    depth(root, el),
			Editable: hostdom.IsContentEditable(el),
			Focused:  el == focused,
		}
		if b.Editable && !hostdom.IsBlank(el) {
			b.Text = strings.TrimSpace(hostdom.TextContent(el))
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s
}

func depth(root, el *html.Node) int {
	d := 0
	for n := el.Parent; n != nil && n != root; n = n.Parent {
		d++
	}
	return d
}

// Write renders the editor's document in format. Raw html keeps the toolbar
// and the binding markers. Html and markdown output strip the editor markup
// from the tree, so Write is the last thing to do with an editor.
func Write(w io.Writer, ed *editor.Editor, format string, raw bool) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Summarize(ed)); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil

	case config.FormatMarkdown:
		editor.StripMarkup(ed.Root())
		out, err := md.FromHTML(hostdom.InnerHTML(ed.Root()))
		if err != nil {
			return fmt.Errorf("failed to convert document: %w", err)
		}
		_, err = fmt.Fprintln(w, out)
		return err

	case "", config.FormatHTML:
		if raw {
			if tb := ed.Toolbar(); tb != nil && tb.Parent != nil {
				if err := hostdom.Render(w, tb); err != nil {
					return fmt.Errorf("failed to render toolbar: %w", err)
				}
				fmt.Fprintln(w)
			}
			if err := hostdom.Render(w, ed.Root()); err != nil {
				return fmt.Errorf("failed to render document: %w", err)
			}
			_, err := fmt.Fprintln(w)
			return err
		}
		editor.StripMarkup(ed.Root())
		_, err := fmt.Fprintln(w, strings.TrimSpace(hostdom.InnerHTML(ed.Root())))
		return err

	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
