package md

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML converts an HTML fragment, such as the rendered content of an
// editor root, to markdown.
func FromHTML(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(input)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
