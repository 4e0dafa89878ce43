package postpack

import (
	"path/filepath"
	"strings"
)

// Labels used in the composed post.
const (
	LabelTitle    = "[정보정리] "
	LabelSummary  = "한줄 요약: "
	LabelBody     = "본문"
	LabelFooter   = "정리 및 참고 링크"
	LabelSource   = "원문 링크: "
	LabelHashtags = "해시태그"
	Rule          = "----------------------------------------"
)

// SegmentKind classifies a line of a composed post.
type SegmentKind int

// SegmentKind values.
const (
	SegmentBlank SegmentKind = iota
	SegmentHeader
	SegmentSummary
	SegmentMarker
	SegmentParagraph
	SegmentImage
	SegmentFooter
)

// Segment is one line of a composed post.
type Segment struct {
	Kind SegmentKind
	Text string
	// Image is the index into the post's image list for SegmentImage.
	Image int
}

// Post is a composed document: header, paragraphs interleaved with image
// placeholders, and footer.
type Post struct {
	Segments []Segment
	Images   []ProcessedImage
	Keywords KeywordSet
	Hashtags string
}

// Render returns the post text. The archive text entry is exactly these
// bytes.
func (p *Post) Render() string {
	lines := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		lines[i] = s.Text
	}
	return strings.Join(lines, "\n")
}

// Placeholders returns the image placeholder segments in order.
func (p *Post) Placeholders() []Segment {
	var out []Segment
	for _, s := range p.Segments {
		if s.Kind == SegmentImage {
			out = append(out, s)
		}
	}
	return out
}

// ComposeInput holds everything the composer lays out.
type ComposeInput struct {
	Title     string
	Summary   string
	Body      string
	SourceURL string
	Images    []ProcessedImage
	// Interval places one image placeholder after every Interval paragraphs.
	Interval int
}

// Paragraphs splits body on line breaks and returns the trimmed,
// non-empty lines.
func Paragraphs(body string) []string {
	var paras []string
	for _, line := range strings.Split(body, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// PlaceholderText returns the placeholder line for an image file.
func PlaceholderText(path string) string {
	return "[이미지 삽입: " + filepath.Base(path) + "]"
}

// Compose lays out a post. Keywords are ranked from title and body.
func Compose(in ComposeInput, keywords KeywordExtractor, sep HashtagSeparator) (*Post, error) {
	if in.Interval < 1 {
		return nil, Errorf(EINVALID, "paragraph interval must be at least 1")
	}

	ks := keywords.Extract(in.Title + "\n" + in.Body)
	post := &Post{
		Images:   in.Images,
		Keywords: ks,
		Hashtags: ks.Hashtags(sep),
	}
	add := func(kind SegmentKind, text string) {
		post.Segments = append(post.Segments, Segment{Kind: kind, Text: text})
	}

	add(SegmentHeader, LabelTitle+in.Title)
	add(SegmentBlank, "")
	if in.Summary != "" {
		add(SegmentSummary, LabelSummary+in.Summary)
		add(SegmentBlank, "")
	}
	add(SegmentMarker, LabelBody)
	add(SegmentMarker, Rule)
	add(SegmentBlank, "")

	next := 0
	for i, p := range Paragraphs(in.Body) {
		add(SegmentParagraph, p)
		if (i+1)%in.Interval == 0 && next < len(in.Images) {
			post.Segments = append(post.Segments, Segment{
				Kind:  SegmentImage,
				Text:  PlaceholderText(in.Images[next].Path),
				Image: next,
			})
			next++
		}
	}

	add(SegmentBlank, "")
	add(SegmentFooter, LabelFooter)
	add(SegmentFooter, Rule)
	add(SegmentFooter, LabelSource+in.SourceURL)
	add(SegmentBlank, "")
	add(SegmentFooter, LabelHashtags)
	add(SegmentFooter, post.Hashtags)

	return post, nil
}
