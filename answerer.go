package webask

import "context"

// Refusal is the sentence the model is told to emit when the context does not
// contain the answer.
const Refusal = "The answer is not available in the provided context."

// Answerer answers a question using only the supplied context.
type Answerer interface {
	// Answer returns the model's answer to question grounded in text.
	// Every failure is an *Error whose message is fit for display.
	// Returns EUNCONFIGURED without a client and EINVALID if text or
	// question is empty.
	Answer(ctx context.Context, text, question string) (string, error)
}
