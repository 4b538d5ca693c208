// Package scrape turns URLs into extracted page text. It combines a
// webask.Fetcher with a webask.TextExtractor and reports every outcome as a
// webask.Extraction instead of an error.
package scrape

import (
	"context"

	"github.com/fwojciec/webask"
)

// Ensure Scraper implements webask.ContentExtractor at compile time.
var _ webask.ContentExtractor = (*Scraper)(nil)

// Scraper fetches a page, checks that it is HTML and extracts its text.
type Scraper struct {
	Fetcher   webask.Fetcher
	Extractor webask.TextExtractor
}

// NewScraper creates a new Scraper.
func NewScraper(fetcher webask.Fetcher, extractor webask.TextExtractor) *Scraper {
	return &Scraper{Fetcher: fetcher, Extractor: extractor}
}

// Extract fetches url once and extracts its text. It never returns nil.
func (s *Scraper) Extract(ctx context.Context, url string) *webask.Extraction {
	resp, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failed(url, fetchReason(err), err)
	}

	if !resp.IsHTML() {
		return failed(url, webask.ReasonNotHTML,
			webask.Errorf(webask.EUNSUPPORTED, "content is not HTML (%s)", resp.ContentType))
	}

	text, err := s.Extractor.ExtractText(resp.Body)
	if err != nil {
		reason := webask.ReasonParse
		if webask.ErrorCode(err) == webask.ENOTFOUND {
			reason = webask.ReasonNoContent
		}
		return failed(url, reason, err)
	}

	if text == "" {
		return &webask.Extraction{
			URL:         url,
			Status:      webask.StatusEmpty,
			Text:        webask.NoRelevantText,
			ContentHash: webask.ComputeHash(webask.NoRelevantText),
		}
	}

	return &webask.Extraction{
		URL:         url,
		Status:      webask.StatusSuccess,
		Text:        text,
		ContentHash: webask.ComputeHash(text),
	}
}

// ExtractAll runs extractor against every URL in order, one at a time. The
// result has one entry per input URL. A failure never stops the remaining
// URLs; once ctx is canceled the remaining entries are failed without a fetch.
func ExtractAll(ctx context.Context, extractor webask.ContentExtractor, urls []string) []*webask.Extraction {
	exts := make([]*webask.Extraction, 0, len(urls))
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			exts = append(exts, failed(url, webask.ReasonNetwork, webask.Errorf(webask.ENETWORK, "canceled before fetching %s", url)))
			continue
		}
		exts = append(exts, extractor.Extract(ctx, url))
	}
	return exts
}

func failed(url string, reason webask.FailureReason, err error) *webask.Extraction {
	return &webask.Extraction{
		URL:    url,
		Status: webask.StatusFailed,
		Reason: reason,
		Err:    err,
	}
}

// fetchReason maps a fetcher error code to a failure reason.
func fetchReason(err error) webask.FailureReason {
	switch webask.ErrorCode(err) {
	case webask.ESTATUS:
		return webask.ReasonStatus
	case webask.ETIMEOUT:
		return webask.ReasonTimeout
	default:
		return webask.ReasonNetwork
	}
}
