package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postpack"
)

// containerSelector matches the elements that usually wrap the main text.
const containerSelector = "article, main, section"

// Ensure StructuralExtractor implements postpack.TextExtractor at compile time.
var _ postpack.TextExtractor = (*StructuralExtractor)(nil)

// StructuralExtractor is the last-resort strategy: it reads block elements
// from the first article, main or section element, or from the whole
// document when none exists.
type StructuralExtractor struct{}

// NewStructuralExtractor creates a new StructuralExtractor.
func NewStructuralExtractor() *StructuralExtractor {
	return &StructuralExtractor{}
}

// Name returns "structural".
func (e *StructuralExtractor) Name() string {
	return "structural"
}

// MinLength accepts any non-empty text.
func (e *StructuralExtractor) MinLength() int {
	return 0
}

// ExtractText returns the block text of the main container.
func (e *StructuralExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", postpack.Errorf(postpack.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", postpack.Errorf(postpack.EEXTRACT, "failed to parse HTML: %v", err)
	}

	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		container = doc.Selection
	}
	return blocks(container), nil
}
