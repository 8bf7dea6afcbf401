package editor

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// BuildToolbar creates the insert dialog with one button per insertable
// descriptor and places it right before the root.
func BuildToolbar(e *Editor) *html.Node {
	dialog := hostdom.NewElement("div")
	hostdom.SetAttr(dialog, AttrInsertDialog, "true")
	hostdom.SetAttr(dialog, "class", ToolbarClass)

	for _, d := range e.registry.Insertable() {
		button := hostdom.NewElement("button")
		hostdom.SetAttr(button, AttrInsertTag, d.TagName)
		// TODO: labels are raw tag names until there is a translation table
		hostdom.SetTextContent(button, d.TagName)
		dialog.AppendChild(button)

		e.doc.AddEventListener(button, hostdom.EventClick, func(ev *hostdom.Event) error {
			ev.StopPropagation()
			ev.PreventDefault()
			if hostdom.HasAttr(button, "disabled") {
				return nil
			}
			_, err := e.InsertAfter(d, nil, true)
			return err
		})
	}

	e.toolbar = dialog
	if parent := e.root.Parent; parent != nil {
		parent.InsertBefore(dialog, e.root)
	} else {
		e.logger.Printf("WARN: root <%s> has no parent, toolbar not inserted", e.root.Data)
	}
	return dialog
}

// RefreshToolbar enables the buttons whose block may go under target, or at
// the root when target is nil, and disables the rest.
func RefreshToolbar(e *Editor, target *html.Node) {
	if e.toolbar == nil {
		return
	}
	for _, d := range e.registry.Insertable() {
		button := ToolbarButton(e, d.TagName)
		if button == nil {
			continue
		}
		if enabledFor(d, target) {
			hostdom.RemoveAttr(button, "disabled")
		} else {
			hostdom.SetAttr(button, "disabled", "")
		}
	}
}

// ToolbarButton returns the insert button for tag, or nil.
func ToolbarButton(e *Editor, tag string) *html.Node {
	if e.toolbar == nil {
		return nil
	}
	return dom.FindFirstNode(e.toolbar, func(n *html.Node) bool {
		return dom.NodeName(n) == "button" && dom.GetAttributeOr(n, AttrInsertTag, "") == tag
	})
}

func enabledFor(d *schema.Descriptor, target *html.Node) bool {
	if target == nil {
		return d.RootAllowed
	}
	return d.AllowedUnder(target.Data)
}
