package mock

import (
	"context"

	"github.com/fwojciec/webask"
)

var _ webask.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webask.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*webask.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*webask.Response, error) {
	return f.FetchFn(ctx, url)
}
