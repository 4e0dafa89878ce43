// Package readability provides the readability content strategy backed by
// go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/goquery"
	"github.com/go-shiori/go-readability"
)

// MinLength is the rune count the extracted text must exceed.
const MinLength = 50

// Ensure Extractor implements postpack.TextExtractor at compile time.
var _ postpack.TextExtractor = (*Extractor)(nil)

// Extractor isolates the article region with go-readability and lists its
// paragraph, list item and heading text.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. pageURL may be nil; when set it
// lets readability resolve relative links inside the article.
func NewExtractor(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Name returns "readability".
func (e *Extractor) Name() string {
	return "readability"
}

// MinLength returns the acceptance threshold.
func (e *Extractor) MinLength() int {
	return MinLength
}

// ExtractText returns the block text of the article region.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", postpack.Errorf(postpack.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", postpack.Errorf(postpack.EEXTRACT, "readability found no article")
	}

	return goquery.BlockText(article.Content)
}
