package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postpack"
)

// Ensure MetadataExtractor implements postpack.MetadataExtractor at compile time.
var _ postpack.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads title and description from social preview tags,
// falling back to the document title and the meta description.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata returns the page title and description. Missing values
// are empty strings.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*postpack.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postpack.Errorf(postpack.EEXTRACT, "failed to parse HTML: %v", err)
	}

	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	desc := metaContent(doc, `meta[property="og:description"]`)
	if desc == "" {
		desc = metaContent(doc, `meta[name="description"]`)
	}

	return &postpack.Metadata{
		Title:       title,
		Description: desc,
	}, nil
}

// metaContent returns the first non-empty content attribute among the
// elements matching selector.
func metaContent(doc *goquery.Document, selector string) string {
	var content string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content = strings.TrimSpace(s.AttrOr("content", ""))
		return content == ""
	})
	return content
}
