package mock

import (
	"context"

	"github.com/fwojciec/webask"
)

var _ webask.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of webask.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ webask.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of webask.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(ctx context.Context, url string) *webask.Extraction
}

func (e *ContentExtractor) Extract(ctx context.Context, url string) *webask.Extraction {
	return e.ExtractFn(ctx, url)
}
