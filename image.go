package postpack

import "context"

// ImageCandidate is a discovered image URL prior to validation.
type ImageCandidate struct {
	// URL is absolute.
	URL string
	// Key is URL without query string and fragment, used for deduplication.
	Key string
}

// ImageCollector discovers candidate images in markup.
type ImageCollector interface {
	// Collect returns deduplicated candidates in discovery order, social
	// preview images first. A limit of zero means unlimited.
	Collect(html string, baseURL string, limit int) ([]ImageCandidate, error)
}

// ProcessedImage is an image that passed validation and was normalized and
// persisted.
type ProcessedImage struct {
	Path      string
	Width     int
	Height    int
	SourceURL string
	// Digest identifies the fetched source bytes.
	Digest uint64
}

// SkipReason tells why a candidate produced no image.
type SkipReason string

// SkipReason values.
const (
	SkipFetch     SkipReason = "fetch"
	SkipDecode    SkipReason = "decode"
	SkipTooSmall  SkipReason = "too_small"
	SkipDuplicate SkipReason = "duplicate"
	SkipEncode    SkipReason = "encode"
	SkipStore     SkipReason = "store"
)

// ImageOutcome is the typed result of processing one candidate: either
// Image is set, or Reason and Err describe the skip.
type ImageOutcome struct {
	Candidate ImageCandidate
	Image     *ProcessedImage
	Reason    SkipReason
	Err       error
}

// OK reports whether the candidate produced an image.
func (o ImageOutcome) OK() bool {
	return o.Image != nil
}

// Skipped returns an outcome for a candidate that produced no image.
func Skipped(c ImageCandidate, reason SkipReason, err error) ImageOutcome {
	return ImageOutcome{Candidate: c, Reason: reason, Err: err}
}

// ImageProcessor downloads, validates and normalizes one candidate.
// Failures are reported in the outcome, never returned as errors.
type ImageProcessor interface {
	Process(ctx context.Context, candidate ImageCandidate) ImageOutcome
}

// ImageStore persists processed images in a scoped per-run location.
type ImageStore interface {
	// Save writes data under the next sequential filename and returns
	// its path.
	Save(data []byte) (string, error)
}
