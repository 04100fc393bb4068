package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Description strips markup from a raw description cell and collapses the
// result into single-spaced plain text. Entities are decoded by the HTML
// parser, so "&amp;" comes out as "&". Text from adjacent elements is
// joined with a space, so list items and paragraphs stay separate words.
// Markup the parser cannot make sense of degrades to the raw text; this
// function never fails.
func Description(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return CleanText(raw)
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return CleanText(strings.Join(parts, " "))
}

// CleanText replaces non-breaking spaces and collapses all runs of
// whitespace into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
