// Package slog provides logging decorators for postpack services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postpack"
)

// Ensure LoggingFetcher implements postpack.Fetcher.
var _ postpack.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   postpack.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next postpack.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// FetchBytes delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchBytes(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch bytes",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchBytes(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
