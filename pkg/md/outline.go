package md

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Outline lists the headings under n in document order.
func Outline(n *html.Node) []Heading {
	nodes := dom.FindAllNodes(n, func(c *html.Node) bool {
		return dom.NameIsHeading(dom.NodeName(c))
	})

	out := make([]Heading, 0, len(nodes))
	for _, h := range nodes {
		out = append(out, Heading{
			Level: int(h.Data[1] - '0'),
			Text:  strings.TrimSpace(dom.CollectText(h)),
		})
	}
	return out
}

// Title returns the text of the first heading under n, or "".
func Title(n *html.Node) string {
	h := dom.FindFirstNode(n, func(c *html.Node) bool {
		return dom.NameIsHeading(dom.NodeName(c))
	})
	if h == nil {
		return ""
	}
	return strings.TrimSpace(dom.CollectText(h))
}
