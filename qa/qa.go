// Package qa runs a single question-answering submission: extract every URL
// in order, join the usable text, and ask the question against it.
package qa

import (
	"context"

	"github.com/fwojciec/webask"
	"github.com/fwojciec/webask/scrape"
	"github.com/google/uuid"
)

// Service answers questions about a set of web pages.
type Service struct {
	Extractor webask.ContentExtractor
	Answerer  webask.Answerer
}

// Result holds the outcome of one submission.
type Result struct {
	// ID identifies the submission in logs.
	ID string

	// Extractions has one entry per input URL, in input order.
	Extractions []*webask.Extraction

	// Context is the text sent to the model.
	Context string

	// Answer is the model's answer or, when Err is set, the message
	// describing why there is none.
	Answer string

	// Err is the answerer's error, if any.
	Err error
}

// Ask extracts urls one at a time and answers question using the text of
// every usable page. Returns ENOCONTENT without calling the answerer when no
// page yielded text. Answerer failures are not returned; they are reported
// through Result.Answer and Result.Err.
func (s *Service) Ask(ctx context.Context, urls []string, question string) (*Result, error) {
	result := &Result{ID: uuid.NewString()}

	result.Extractions = scrape.ExtractAll(ctx, s.Extractor, urls)
	result.Context = webask.JoinContext(result.Extractions)
	if result.Context == "" {
		return result, webask.Errorf(webask.ENOCONTENT, "No valid content found from the provided URLs.")
	}

	answer, err := s.Answerer.Answer(ctx, result.Context, question)
	if err != nil {
		result.Answer = webask.ErrorMessage(err)
		result.Err = err
		return result, nil
	}
	result.Answer = answer
	return result, nil
}
