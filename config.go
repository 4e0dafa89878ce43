package postpack

import (
	"slices"
	"time"
)

// HashtagSeparator selects how rendered hashtags are joined.
type HashtagSeparator string

// HashtagSeparator values.
const (
	SeparatorComma HashtagSeparator = "comma"
	SeparatorSpace HashtagSeparator = "space"
)

// Join returns the string placed between rendered hashtags.
func (s HashtagSeparator) Join() string {
	if s == SeparatorSpace {
		return " "
	}
	return ", "
}

// TargetWidths lists the supported resize targets in pixels.
var TargetWidths = []int{960, 1200, 1280, 1440}

// DefaultUserAgent is sent with every page and image request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120 Safari/537.36"

// Config holds the options of one run together with the process-wide
// constants (thresholds, user agent, stopwords). It is built once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// MaxImages caps the number of processed images. Zero disables images.
	MaxImages int
	// TargetWidth is the width images are resized to. One of TargetWidths.
	TargetWidth int
	// ParagraphInterval places one image after every N paragraphs.
	ParagraphInterval int
	// HashtagSeparator selects comma or space separated hashtags.
	HashtagSeparator HashtagSeparator

	// SkipDuplicateImages drops a candidate whose bytes match an image
	// already accepted in this run.
	SkipDuplicateImages bool

	// CandidateFactor multiplies MaxImages to bound the candidate list.
	CandidateFactor int
	MinImageWidth   int
	MinImageHeight  int
	BorderWidth     int
	JPEGQuality     int
	KeywordLimit    int
	// SummaryWidth is the rune budget of an auto-generated summary.
	SummaryWidth int

	UserAgent    string
	FetchTimeout time.Duration

	// TextExt is the extension of the post text entry.
	TextExt string
	// DefaultSlug names the output when the title yields an empty slug.
	DefaultSlug string

	Stopwords StopwordSet
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		MaxImages:           8,
		TargetWidth:         1280,
		ParagraphInterval:   3,
		HashtagSeparator:    SeparatorComma,
		SkipDuplicateImages: true,
		CandidateFactor:     3,
		MinImageWidth:       400,
		MinImageHeight:      250,
		BorderWidth:         30,
		JPEGQuality:         90,
		KeywordLimit:        12,
		SummaryWidth:        120,
		UserAgent:           DefaultUserAgent,
		FetchTimeout:        15 * time.Second,
		TextExt:             "txt",
		DefaultSlug:         "naver-post",
		Stopwords:           DefaultStopwords(),
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.MaxImages < 0 {
		return Errorf(EINVALID, "max images must not be negative")
	}
	if !slices.Contains(TargetWidths, c.TargetWidth) {
		return Errorf(EINVALID, "target width %d not supported (want one of %v)", c.TargetWidth, TargetWidths)
	}
	if c.ParagraphInterval < 1 {
		return Errorf(EINVALID, "paragraph interval must be at least 1")
	}
	switch c.HashtagSeparator {
	case SeparatorComma, SeparatorSpace:
	default:
		return Errorf(EINVALID, "unknown hashtag separator %q", c.HashtagSeparator)
	}
	if c.KeywordLimit < 1 {
		return Errorf(EINVALID, "keyword limit must be at least 1")
	}
	if c.TextExt == "" {
		return Errorf(EINVALID, "text extension required")
	}
	return nil
}

// CandidateLimit returns the cap applied when collecting image candidates.
// Zero means unlimited.
func (c Config) CandidateLimit() int {
	if c.MaxImages == 0 {
		return 0
	}
	factor := c.CandidateFactor
	if factor < 1 {
		factor = 1
	}
	return c.MaxImages * factor
}

// StopwordSet is a read-only set of tokens excluded from keyword ranking.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from the given tokens.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether token is a stopword.
func (s StopwordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// DefaultStopwords returns the common Korean function words and filler
// nouns that carry no topic signal.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(
		"그리고", "하지만", "그러나", "그래서", "또한", "이것", "저것", "그것", "하면", "하며",
		"하는", "했다", "합니다", "및", "등", "때문", "위해", "대한", "에서", "으로",
		"에게", "이다", "있다", "된다", "같은", "그", "더", "수", "하다", "것",
		"입니다", "이번", "오늘", "지난", "통해", "이미", "최근", "많은", "모든", "사진",
		"이미지", "정보", "소개",
	)
}
