// Package goquery implements markup scanning on top of goquery: the
// structural content strategy, head metadata and image discovery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// BlockSelector matches the elements whose text forms body blocks.
const BlockSelector = "p, li, h2, h3"

// noiseSelector matches elements whose text never belongs to the body.
const noiseSelector = "script, style, noscript, svg"

// BlockText parses an HTML fragment and returns the text of its block
// elements separated by blank lines.
func BlockText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return blocks(doc.Selection), nil
}

// blocks joins the text of every block element under sel.
func blocks(sel *goquery.Selection) string {
	sel.Find(noiseSelector).Remove()

	var parts []string
	sel.Find(BlockSelector).Each(func(_ int, s *goquery.Selection) {
		if t := nodeText(s); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// nodeText returns the trimmed, non-empty text nodes under sel joined by
// newlines.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
