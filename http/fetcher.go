// Package http provides an HTTP-based implementation of webask.Fetcher.
// Pages are fetched with a single GET request using a browser User-Agent;
// JavaScript is never executed.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/webask"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent is sent with every request. Some sites refuse clients
// that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// MaxBodySize is the maximum number of body bytes read from a response.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements webask.Fetcher at compile time.
var _ webask.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
// Redirects are followed by the default client policy.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url. The body is decoded to UTF-8 using the
// declared or sniffed charset. Non-HTML bodies are returned undecoded so the
// caller can inspect the content type.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*webask.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, webask.Errorf(webask.ENETWORK, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, webask.Errorf(webask.ESTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	var body io.Reader = io.LimitReader(resp.Body, MaxBodySize)
	if webask.IsHTMLContentType(contentType) {
		body, err = charset.NewReader(body, contentType)
		if err != nil {
			return nil, webask.Errorf(webask.ENETWORK, "decode body of %s: %v", url, err)
		}
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, transportError(url, err)
	}

	return &webask.Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        string(b),
	}, nil
}

// transportError classifies a client error as a timeout or a network failure.
func transportError(url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return webask.Errorf(webask.ETIMEOUT, "timeout fetching %s", url)
	}
	return webask.Errorf(webask.ENETWORK, "failed to fetch %s: %v", url, err)
}
