package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webask"
)

// Ensure LoggingAnswerer implements webask.Answerer.
var _ webask.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging.
type LoggingAnswerer struct {
	next   webask.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next webask.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the call.
func (a *LoggingAnswerer) Answer(ctx context.Context, text, question string) (answer string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			a.logger.Error("answer",
				"context_chars", len(text),
				"code", webask.ErrorCode(err),
				"err", err,
				"duration", time.Since(begin),
			)
			return
		}
		a.logger.Info("answer",
			"context_chars", len(text),
			"answer_chars", len(answer),
			"refused", answer == webask.Refusal,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Answer(ctx, text, question)
}
