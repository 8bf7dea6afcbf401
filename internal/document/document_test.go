package document

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/pkg/editor"
	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"notes.md", "", config.FormatMarkdown},
		{"notes.MARKDOWN", config.FormatAuto, config.FormatMarkdown},
		{"page.html", "", config.FormatHTML},
		{"page", "", config.FormatHTML},
		{"notes.md", config.FormatHTML, config.FormatHTML},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path, tt.format))
		})
	}
}

func TestRead_WrapsBody(t *testing.T) {
	src, err := Read(strings.NewReader(`<h1>Title</h1><p>text</p>`), config.FormatHTML)
	require.NoError(t, err)

	assert.True(t, hostdom.HasAttr(src.Root, RootAttr))
	assert.Same(t, src.Doc.Body(), src.Root.Parent)
	assert.Equal(t, `<h1>Title</h1><p>text</p>`, hostdom.InnerHTML(src.Root))
}

func TestRead_MarkedRoot(t *testing.T) {
	src, err := Read(strings.NewReader(
		`<header>nav</header><main data-editor-root><p>text</p></main>`), config.FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, "main", src.Root.Data)
	assert.Equal(t, `<p>text</p>`, hostdom.InnerHTML(src.Root))
}

func TestRead_Markdown(t *testing.T) {
	src, err := Read(strings.NewReader("# Title\n\n- one\n- two\n"), config.FormatMarkdown)
	require.NoError(t, err)

	var tags []string
	for _, el := range hostdom.Elements(src.Root) {
		tags = append(tags, el.Data)
	}
	assert.Equal(t, []string{"h1", "ul", "li", "li"}, tags)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("Some *text*\n"), 0644))

	src, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "p", src.Root.FirstChild.Data)

	_, err = Load(filepath.Join(t.TempDir(), "missing.html"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open document")
}

func TestRegistry(t *testing.T) {
	reg, err := Registry(nil)
	require.NoError(t, err)
	assert.Same(t, schema.Default(), reg)

	reg, err = Registry(&config.Config{})
	require.NoError(t, err)
	assert.Same(t, schema.Default(), reg)

	path := filepath.Join(t.TempDir(), "blocks.yml")
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - tag: p\n    root_allowed: true\n    editable: true\n"), 0644))
	reg, err = Registry(&config.Config{Catalog: path})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	_, err = Registry(&config.Config{Catalog: filepath.Join(t.TempDir(), "none.yml")})
	require.Error(t, err)
}

func mount(t *testing.T, input, format string) *editor.Editor {
	t.Helper()
	src, err := Read(strings.NewReader(input), format)
	require.NoError(t, err)
	ed, err := editor.New(src.Doc, src.Root, editor.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	require.NoError(t, err)
	return ed
}

func TestWrite_HTML(t *testing.T) {
	ed := mount(t, `<h1>Title</h1><p></p>`, config.FormatHTML)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ed, config.FormatHTML, false))
	assert.Equal(t, "<h1>Title</h1><p></p>\n", buf.String())
}

func TestWrite_RawHTML(t *testing.T) {
	ed := mount(t, `<h1>Title</h1>`, config.FormatHTML)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ed, "", true))
	out := buf.String()
	assert.Contains(t, out, editor.AttrInsertDialog)
	assert.Contains(t, out, `contenteditable="true"`)
	assert.Contains(t, out, editor.RootClass)
	assert.Less(t, strings.Index(out, editor.AttrInsertDialog), strings.Index(out, "<h1"))
}

func TestWrite_Markdown(t *testing.T) {
	ed := mount(t, "# Title\n\nbody\n", config.FormatMarkdown)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ed, config.FormatMarkdown, false))
	assert.Equal(t, "# Title\n\nbody\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	ed := mount(t, `<h1>Title</h1><ul><li>a</li></ul><section>x</section>`, config.FormatHTML)
	require.NoError(t, ed.Focus(ed.Editables()[1]))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ed, config.FormatJSON, false))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Title", got.Title)
	assert.Len(t, got.Outline, 1)
	assert.Equal(t, []Block{
		{Tag: "h1", Depth: 0, Editable: true, Text: "Title"},
		{Tag: "ul", Depth: 0},
		{Tag: "li", Depth: 1, Editable: true, Focused: true, Text: "a"},
	}, got.Blocks)
}

func TestWrite_UnknownFormat(t *testing.T) {
	ed := mount(t, `<p>x</p>`, config.FormatHTML)
	err := Write(&bytes.Buffer{}, ed, "pdf", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
