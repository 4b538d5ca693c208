// Package slog provides logging decorators for webask services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webask"
)

// Ensure LoggingFetcher implements webask.Fetcher.
var _ webask.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   webask.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webask.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *webask.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if resp != nil {
			attrs = append(attrs, "status", resp.StatusCode, "content_type", resp.ContentType, "bytes", len(resp.Body))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Debug("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
