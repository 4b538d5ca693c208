// Package trafilatura implements webask.TextExtractor with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/webask"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure TextExtractor implements webask.TextExtractor at compile time.
var _ webask.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-trafilatura to extract main content text from HTML.
type TextExtractor struct {
	opts trafilatura.Options
}

// NewTextExtractor creates a new TextExtractor. Fallback extractors are
// enabled, comments are excluded.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// ExtractText returns the extracted text with short lines dropped and
// whitespace collapsed.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", webask.Errorf(webask.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return "", webask.Errorf(webask.EINVALID, "trafilatura: %v", err)
	}
	if result == nil {
		return "", nil
	}

	return webask.CleanChunks(strings.Split(result.ContentText, "\n")), nil
}
