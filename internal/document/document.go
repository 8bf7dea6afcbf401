// Package document loads files into an editable tree and writes the edited
// result back out.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
	"github.com/open-cli-collective/semantic-editor/pkg/md"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// RootAttr marks the element to mount in an HTML input. Without it the
// content of the body is wrapped in a new root.
const RootAttr = "data-editor-root"

// Source is a loaded document and the root the editor mounts on.
type Source struct {
	Doc  *hostdom.Document
	Root *html.Node
}

// DetectFormat resolves the input format of path. Explicit formats win over
// the file extension.
func DetectFormat(path, format string) string {
	if format != "" && format != config.FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return config.FormatMarkdown
	default:
		return config.FormatHTML
	}
}

// Load reads the file at path.
func Load(path, format string, opts ...hostdom.Option) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	return Read(f, DetectFormat(path, format), opts...)
}

// Read parses r as html or markdown.
func Read(r io.Reader, format string, opts ...hostdom.Option) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if format == config.FormatMarkdown {
		converted, err := md.ToHTML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert markdown: %w", err)
		}
		data = []byte(converted)
	}

	doc, err := hostdom.Parse(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	root := dom.FindFirstNode(doc.Node(), func(n *html.Node) bool {
		return hostdom.HasAttr(n, RootAttr)
	})
	if root == nil {
		root = wrapBody(doc)
	}
	return &Source{Doc: doc, Root: root}, nil
}

// wrapBody moves the children of body into a new root element.
func wrapBody(doc *hostdom.Document) *html.Node {
	body := doc.Body()
	root := hostdom.NewElement("div")
	hostdom.SetAttr(root, RootAttr, "")
	for c := body.FirstChild; c != nil; {
		next := c.NextSibling
		body.RemoveChild(c)
		root.AppendChild(c)
		c = next
	}
	body.AppendChild(root)
	return root
}

// Registry returns the catalog configured in cfg, or the built-in one.
func Registry(cfg *config.Config) (*schema.Registry, error) {
	if cfg == nil || cfg.Catalog == "" {
		return schema.Default(), nil
	}
	return schema.LoadCatalogFile(cfg.CatalogPath())
}
