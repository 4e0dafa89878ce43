package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/postpack"
)

// Ensure LoggingArchiver implements postpack.Archiver.
var _ postpack.Archiver = (*LoggingArchiver)(nil)

// LoggingArchiver wraps an Archiver with logging.
type LoggingArchiver struct {
	next   postpack.Archiver
	logger *slog.Logger
}

// NewLoggingArchiver creates a new LoggingArchiver.
func NewLoggingArchiver(next postpack.Archiver, logger *slog.Logger) *LoggingArchiver {
	return &LoggingArchiver{next: next, logger: logger}
}

// Archive delegates to the wrapped archiver and logs the operation.
// Omitted images are logged as a warning.
func (a *LoggingArchiver) Archive(textName string, text []byte, imagePaths []string) (archive *postpack.Archive, err error) {
	defer func(begin time.Time) {
		var entries, size int
		if archive != nil {
			entries = len(archive.Entries)
			size = len(archive.Data)
			for _, p := range archive.Omitted {
				a.logger.Warn("image omitted from archive", "path", p)
			}
		}
		a.logger.Info("archive",
			"name", textName,
			"entries", entries,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Archive(textName, text, imagePaths)
}
