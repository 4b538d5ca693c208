// Package gemini implements webask.Answerer with the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/webask"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Prompt markers delimiting the grounding context.
const (
	ContextStart = "=== CONTEXT START ==="
	ContextEnd   = "=== CONTEXT END ==="
)

// Generator generates content from a prompt. *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure Answerer implements webask.Answerer at compile time.
var _ webask.Answerer = (*Answerer)(nil)

// Answerer implements webask.Answerer using Google Gemini.
type Answerer struct {
	models Generator
	model  string
}

// NewAnswerer creates a new Answerer. A nil models makes every Answer call
// fail with EUNCONFIGURED. An empty model selects DefaultModel.
func NewAnswerer(models Generator, model string) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	return &Answerer{models: models, model: model}
}

// Answer asks the model to answer question using only text.
func (a *Answerer) Answer(ctx context.Context, text, question string) (string, error) {
	if a.models == nil {
		return "", webask.Errorf(webask.EUNCONFIGURED, "Error: Gemini API not configured.")
	}
	if text == "" || question == "" {
		return "", webask.Errorf(webask.EINVALID, "Error: Missing context or question.")
	}

	result, err := a.models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(text, question)}},
		}},
		nil,
	)
	if err != nil {
		return "", classifyError(err)
	}

	return interpret(result)
}

// BuildPrompt builds the single prompt sent to the model. The instructions,
// the context and the question all live in this one message.
func BuildPrompt(text, question string) string {
	var sb strings.Builder
	sb.WriteString("You are an AI assistant. Answer the following question based *only* on the provided text context.\n")
	fmt.Fprintf(&sb, "Do not use any external knowledge. If the answer isn't in the context, state exactly: '%s'\n\n", webask.Refusal)
	sb.WriteString(ContextStart + "\n")
	sb.WriteString(text + "\n")
	sb.WriteString(ContextEnd + "\n\n")
	fmt.Fprintf(&sb, "QUESTION: %s\n\n", question)
	sb.WriteString("ANSWER:")
	return sb.String()
}

// blockingFinishReasons are candidate finish reasons that mean the output
// was withheld by a filter.
var blockingFinishReasons = map[string]bool{
	"SAFETY":             true,
	"RECITATION":         true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
}

// interpret turns a response into answer text, checking in order: the
// response text, the parts of the first candidate, a block reason.
func interpret(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || (len(result.Candidates) > 0 && result.Candidates[0] == nil) {
		return "", webask.Errorf(webask.EMALFORMED, "Warning: Error parsing Gemini response.")
	}

	if len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		if text := strings.TrimSpace(result.Text()); text != "" {
			return text, nil
		}
	}

	var sb strings.Builder
	if len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, p := range result.Candidates[0].Content.Parts {
			if p != nil {
				sb.WriteString(p.Text)
			}
		}
	}
	if text := strings.TrimSpace(sb.String()); text != "" {
		return text, nil
	}

	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", webask.Errorf(webask.EBLOCKED, "Warning: Content generation blocked. Reason: %s.", fb.BlockReason)
	}
	for _, c := range result.Candidates {
		if c != nil && blockingFinishReasons[string(c.FinishReason)] {
			return "", webask.Errorf(webask.EBLOCKED, "Warning: Content generation blocked. Reason: %s.", c.FinishReason)
		}
	}

	return "", webask.Errorf(webask.EEMPTY, "Warning: Gemini returned an empty response.")
}

// classifyError maps an error from the Gemini API to an application error
// carrying the message shown to the user.
func classifyError(err error) error {
	apiErr, ok := asAPIError(err)
	if !ok {
		return webask.Errorf(webask.EINTERNAL, "An unexpected error occurred: %v", err)
	}

	switch {
	case apiErr.Status == "NOT_FOUND" || apiErr.Code == http.StatusNotFound:
		return webask.Errorf(webask.ENOTFOUND, "Error: Gemini model not found.")
	case apiErr.Status == "PERMISSION_DENIED" || apiErr.Code == http.StatusForbidden:
		return webask.Errorf(webask.EFORBIDDEN, "Error: Permission denied (check API key/project).")
	case apiErr.Status == "RESOURCE_EXHAUSTED" || apiErr.Code == http.StatusTooManyRequests:
		return webask.Errorf(webask.ERATELIMIT, "Error: API quota exceeded.")
	case apiErr.Status == "INVALID_ARGUMENT" || apiErr.Code == http.StatusBadRequest:
		return webask.Errorf(webask.EBADREQUEST, "Error: Invalid argument sent to API (check key format?). Details: %s", apiErr.Message)
	case apiErr.Code >= http.StatusInternalServerError:
		return webask.Errorf(webask.EUNAVAILABLE, "Error: Google internal server error. Try again later.")
	default:
		return webask.Errorf(webask.EAPI, "An API error occurred: %s", apiErr.Message)
	}
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
