package mock

import (
	"context"

	"github.com/fwojciec/webask"
)

var _ webask.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of webask.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, text, question string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, text, question string) (string, error) {
	return a.AnswerFn(ctx, text, question)
}
