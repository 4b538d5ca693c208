package webask

import (
	"context"
	"mime"
	"strings"
)

// Response is a fetched web page.
type Response struct {
	// URL is the final URL after redirects.
	URL         string
	StatusCode  int
	ContentType string

	// Body is the decoded page body.
	Body string
}

// IsHTML reports whether the declared content type is an HTML document.
func (r *Response) IsHTML() bool {
	return IsHTMLContentType(r.ContentType)
}

// IsHTMLContentType reports whether a Content-Type header value denotes HTML.
// A missing content type is not HTML.
func IsHTMLContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// Fetcher retrieves web pages over the network.
type Fetcher interface {
	// Fetch issues a single GET request for the URL, following redirects.
	// Returns ESTATUS for non-2xx responses, ETIMEOUT when the request times
	// out and ENETWORK for any other transport failure.
	Fetch(ctx context.Context, url string) (*Response, error)
}
