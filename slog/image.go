package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postpack"
)

// Ensure LoggingImageProcessor implements postpack.ImageProcessor.
var _ postpack.ImageProcessor = (*LoggingImageProcessor)(nil)

// LoggingImageProcessor wraps an ImageProcessor, logging accepted
// candidates at Info and skipped ones at Warn.
type LoggingImageProcessor struct {
	next   postpack.ImageProcessor
	logger *slog.Logger
}

// NewLoggingImageProcessor creates a new LoggingImageProcessor.
func NewLoggingImageProcessor(next postpack.ImageProcessor, logger *slog.Logger) *LoggingImageProcessor {
	return &LoggingImageProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the outcome.
func (p *LoggingImageProcessor) Process(ctx context.Context, c postpack.ImageCandidate) (outcome postpack.ImageOutcome) {
	defer func(begin time.Time) {
		if outcome.OK() {
			p.logger.Info("image accepted",
				"url", c.URL,
				"path", outcome.Image.Path,
				"width", outcome.Image.Width,
				"height", outcome.Image.Height,
				"duration", time.Since(begin),
			)
			return
		}
		p.logger.Warn("image skipped",
			"url", c.URL,
			"reason", string(outcome.Reason),
			"duration", time.Since(begin),
			"err", outcome.Err,
		)
	}(time.Now())
	return p.next.Process(ctx, c)
}
