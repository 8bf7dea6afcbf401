// Package md converts between markdown and the HTML blocks the editor works
// on.
package md

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mdParser is a pre-configured goldmark instance. Definition lists map onto
// the dl/dt/dd blocks of the default catalog.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.DefinitionList),
)

// ToHTML converts markdown content to an HTML fragment.
func ToHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := mdParser.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
