package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webask"
)

// Ensure LoggingContentExtractor implements webask.ContentExtractor.
var _ webask.ContentExtractor = (*LoggingContentExtractor)(nil)

// LoggingContentExtractor wraps a ContentExtractor and logs every outcome.
// Failures are logged at warn level; they never stop a batch.
type LoggingContentExtractor struct {
	next   webask.ContentExtractor
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor.
func NewLoggingContentExtractor(next webask.ContentExtractor, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingContentExtractor) Extract(ctx context.Context, url string) *webask.Extraction {
	begin := time.Now()
	e.logger.Info("fetching", "url", url)

	ext := e.next.Extract(ctx, url)

	switch ext.Status {
	case webask.StatusFailed:
		e.logger.Warn("skipped",
			"url", url,
			"reason", string(ext.Reason),
			"err", ext.Err,
			"duration", time.Since(begin),
		)
	default:
		e.logger.Info("extracted",
			"url", url,
			"status", ext.Status.String(),
			"chars", len(ext.Text),
			"hash", ext.ContentHash,
			"duration", time.Since(begin),
		)
	}
	return ext
}
