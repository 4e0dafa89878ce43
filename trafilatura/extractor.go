// Package trafilatura provides the heuristic content strategy backed by
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// MinLength is the rune count the extracted text must exceed.
const MinLength = 200

// Ensure Extractor implements postpack.TextExtractor at compile time.
var _ postpack.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns "trafilatura".
func (e *Extractor) Name() string {
	return "trafilatura"
}

// MinLength returns the acceptance threshold.
func (e *Extractor) MinLength() int {
	return MinLength
}

// ExtractText returns the main text with comments and tables excluded.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", postpack.Errorf(postpack.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" && result.ContentNode != nil {
		// Some fallback paths fill only the node.
		rendered, err := renderNode(result.ContentNode)
		if err != nil {
			return "", err
		}
		return goquery.BlockText(rendered)
	}
	return text, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
