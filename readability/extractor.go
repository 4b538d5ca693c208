// Package readability implements webask.TextExtractor with go-readability,
// Mozilla's Readability.js scoring algorithm ported to Go.
package readability

import (
	"strings"

	"github.com/fwojciec/webask"
	"github.com/go-shiori/go-readability"
)

// Ensure TextExtractor implements webask.TextExtractor at compile time.
var _ webask.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-readability to extract main content text from HTML.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the article text with short lines dropped and
// whitespace collapsed.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", webask.Errorf(webask.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", webask.Errorf(webask.EINVALID, "readability: %v", err)
	}

	return webask.CleanChunks(strings.Split(article.TextContent, "\n")), nil
}
