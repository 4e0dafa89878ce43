package postpack

// PlaceholderBody replaces the body when no extraction strategy produced text.
const PlaceholderBody = "(본문 추출 실패)"

// RawDocument is fetched markup together with the URL it came from.
type RawDocument struct {
	URL  string
	HTML string
}

// ExtractedContent holds the text derived from a page.
// Title and Body are never empty.
type ExtractedContent struct {
	Title   string
	Summary string
	Body    string

	// Strategy names the extractor whose output became Body.
	// Empty when Body is PlaceholderBody.
	Strategy string

	// Attempts records every strategy tried, in order.
	Attempts []StrategyAttempt
}

// StrategyOutcome classifies a single extraction attempt.
type StrategyOutcome string

// StrategyOutcome values.
const (
	OutcomeAccepted StrategyOutcome = "accepted"
	OutcomeError    StrategyOutcome = "error"
	OutcomeTooShort StrategyOutcome = "too_short"
)

// StrategyAttempt is the typed result of running one TextExtractor.
type StrategyAttempt struct {
	Strategy string
	Outcome  StrategyOutcome
	// Length is the rune count of the produced text.
	Length int
	// Err is set when Outcome is OutcomeError.
	Err error
}

// TextExtractor is one variant of the content extraction chain.
type TextExtractor interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// MinLength is the acceptance threshold: output is accepted only when
	// its rune count is strictly greater.
	MinLength() int

	// ExtractText returns the main text of the page as blocks separated
	// by blank lines.
	ExtractText(html string) (string, error)
}

// Metadata holds page-level descriptors found in the markup head.
type Metadata struct {
	// Title is the social preview title, or the document title.
	Title string
	// Description is the social preview or meta description.
	Description string
}

// MetadataExtractor reads title and description metadata from markup.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*Metadata, error)
}
