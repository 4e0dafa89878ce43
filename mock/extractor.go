package mock

import "github.com/fwojciec/postpack"

var _ postpack.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of postpack.TextExtractor.
type TextExtractor struct {
	NameValue      string
	MinLengthValue int
	ExtractTextFn  func(html string) (string, error)
}

func (e *TextExtractor) Name() string {
	return e.NameValue
}

func (e *TextExtractor) MinLength() int {
	return e.MinLengthValue
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ postpack.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of postpack.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*postpack.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*postpack.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
