package editor

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

func buttonTags(toolbar *html.Node) []string {
	var tags []string
	for c := toolbar.FirstChild; c != nil; c = c.NextSibling {
		tags = append(tags, attr(c, AttrInsertTag))
	}
	return tags
}

func TestBuildToolbar_DefaultCatalog(t *testing.T) {
	f := mountFixture(t, `<p>x</p>`)

	tb := f.ed.Toolbar()
	require.NotNil(t, tb)
	assert.Same(t, f.root, tb.NextSibling)
	assert.Equal(t, "true", attr(tb, AttrInsertDialog))
	assert.Equal(t, ToolbarClass, attr(tb, "class"))
	assert.Equal(t,
		[]string{"blockquote", "dl", "h1", "h2", "h3", "h4", "h5", "h6", "ol", "p", "ul"},
		buttonTags(tb))

	assert.Nil(t, ToolbarButton(f.ed, "li"))
	assert.Equal(t, "ul", hostdom.TextContent(ToolbarButton(f.ed, "ul")))
}

func TestBuildToolbar_RootWithoutParent(t *testing.T) {
	var logs bytes.Buffer
	doc := hostdom.New(hostdom.NewElement("div"))
	ed, err := New(doc, doc.Node(), WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	require.NotNil(t, ed.Toolbar())
	assert.Nil(t, ed.Toolbar().Parent)
	assert.Contains(t, logs.String(), "toolbar not inserted")
}

func TestRefreshToolbar_FollowsFocus(t *testing.T) {
	f := mountFixture(t, `<h1>a</h1><ul><li>b</li></ul><ol><li><p>c</p></li></ol>`)
	disabled := func(tag string) bool {
		return hostdom.HasAttr(ToolbarButton(f.ed, tag), "disabled")
	}

	require.NoError(t, f.doc.Focus(f.find(t, "h1", 0)))
	assert.False(t, disabled("p"))
	assert.False(t, disabled("ul"))

	require.NoError(t, f.doc.Focus(f.find(t, "li", 0)))
	assert.True(t, disabled("p"))
	assert.True(t, disabled("ul"))
	assert.True(t, disabled("h1"))

	require.NoError(t, f.doc.Focus(f.find(t, "p", 0)))
	assert.False(t, disabled("p"))
	assert.True(t, disabled("blockquote"))
}

func TestToolbar_ClickInserts(t *testing.T) {
	f := mountFixture(t, `<h1>a</h1><p>b</p>`)
	h1 := f.find(t, "h1", 0)
	require.NoError(t, f.doc.Focus(h1))

	require.NoError(t, f.doc.Click(ToolbarButton(f.ed, "ul")))

	ul := h1.NextSibling
	require.NotNil(t, ul)
	assert.Equal(t, "ul", ul.Data)
	require.NotNil(t, ul.FirstChild)
	assert.Same(t, ul.FirstChild, f.doc.ActiveElement())

	// Focus is now on the new item: root-level buttons are disabled and
	// clicking them does nothing.
	before := len(f.ed.Editables())
	require.NoError(t, f.doc.Click(ToolbarButton(f.ed, "h2")))
	assert.Len(t, f.ed.Editables(), before)
}

func TestToolbar_NestedInsertable(t *testing.T) {
	dl := &schema.Descriptor{TagName: "dl", RootAllowed: true, Insertable: true, Children: []string{"dt", "dd"}}
	dt := &schema.Descriptor{TagName: "dt", ValidParents: []string{"dl"}, Editable: true, Insertable: true, EnterCreateTag: "dd"}
	dd := &schema.Descriptor{TagName: "dd", ValidParents: []string{"dl"}, Editable: true, EnterCreateTag: "dt"}
	p := &schema.Descriptor{TagName: "p", RootAllowed: true, Editable: true, Insertable: true}
	reg, err := schema.NewRegistry(dl, dt, dd, p)
	require.NoError(t, err)

	f := mountFixture(t, `<p>x</p><dl><dt>t</dt><dd>d</dd></dl>`, WithRegistry(reg))
	disabled := func(tag string) bool {
		return hostdom.HasAttr(ToolbarButton(f.ed, tag), "disabled")
	}

	require.NoError(t, f.doc.Focus(f.find(t, "p", 0)))
	assert.True(t, disabled("dt"))
	assert.False(t, disabled("dl"))

	ddEl := f.find(t, "dd", 0)
	require.NoError(t, f.doc.Focus(ddEl))
	assert.False(t, disabled("dt"))
	assert.True(t, disabled("p"))

	require.NoError(t, f.doc.Click(ToolbarButton(f.ed, "dt")))
	added := ddEl.NextSibling
	require.NotNil(t, added)
	assert.Equal(t, "dt", added.Data)
	assert.True(t, hostdom.IsContentEditable(added))
	assert.Same(t, added, f.doc.ActiveElement())
}

func TestRefreshToolbar_IgnoresNonInsertableDuplicates(t *testing.T) {
	insertable := &schema.Descriptor{TagName: "p", RootAllowed: true, Insertable: true, Editable: true}
	nested := &schema.Descriptor{TagName: "p", ValidParents: []string{"li"}, Editable: true}
	reg, err := schema.NewRegistry(insertable, nested)
	require.NoError(t, err)

	f := mountFixture(t, `<p>x</p>`, WithRegistry(reg))
	button := ToolbarButton(f.ed, "p")
	require.NotNil(t, button)
	assert.Equal(t, []string{"p"}, buttonTags(f.ed.Toolbar()))

	RefreshToolbar(f.ed, nil)
	assert.False(t, hostdom.HasAttr(button, "disabled"))

	require.NoError(t, f.doc.Click(button))
	assert.Len(t, f.ed.Editables(), 2)
}
