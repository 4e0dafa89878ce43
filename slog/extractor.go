package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/postpack"
)

// Ensure LoggingTextExtractor implements postpack.TextExtractor.
var _ postpack.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with per-strategy logging.
type LoggingTextExtractor struct {
	next   postpack.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next postpack.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// Name returns the wrapped strategy name.
func (e *LoggingTextExtractor) Name() string {
	return e.next.Name()
}

// MinLength returns the wrapped strategy threshold.
func (e *LoggingTextExtractor) MinLength() int {
	return e.next.MinLength()
}

// ExtractText delegates to the wrapped strategy and logs the result.
func (e *LoggingTextExtractor) ExtractText(html string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"strategy", e.next.Name(),
			"length", utf8.RuneCountInString(text),
			"min", e.next.MinLength(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(html)
}

// WrapTextExtractors wraps each strategy in a LoggingTextExtractor,
// preserving order.
func WrapTextExtractors(strategies []postpack.TextExtractor, logger *slog.Logger) []postpack.TextExtractor {
	wrapped := make([]postpack.TextExtractor, len(strategies))
	for i, s := range strategies {
		wrapped[i] = NewLoggingTextExtractor(s, logger)
	}
	return wrapped
}
