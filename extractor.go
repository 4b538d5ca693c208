package webask

import "context"

// NoRelevantText is the placeholder text of an extraction that succeeded but
// produced no chunk long enough to keep.
const NoRelevantText = "No relevant text found."

// ExtractionStatus is the outcome of extracting text from a single URL.
type ExtractionStatus int

const (
	// StatusFailed means the page could not be fetched or parsed.
	StatusFailed ExtractionStatus = iota
	// StatusSuccess means non-empty text was extracted.
	StatusSuccess
	// StatusEmpty means the page was parsed but no text survived filtering.
	StatusEmpty
)

func (s ExtractionStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// FailureReason explains why an extraction failed.
type FailureReason string

// FailureReason constants for failed extractions.
const (
	ReasonNone      FailureReason = ""
	ReasonStatus    FailureReason = "status"
	ReasonTimeout   FailureReason = "timeout"
	ReasonNetwork   FailureReason = "network"
	ReasonNotHTML   FailureReason = "not_html"
	ReasonNoContent FailureReason = "no_body"
	ReasonParse     FailureReason = "parse"
)

// Extraction is the result of running the content extractor against one URL.
type Extraction struct {
	URL    string
	Status ExtractionStatus

	// Text holds the cleaned text for StatusSuccess and NoRelevantText for
	// StatusEmpty. It is empty for failures.
	Text string

	// ContentHash is the xxhash of Text, empty for failures.
	ContentHash string

	// Reason and Err describe a failure.
	Reason FailureReason
	Err    error
}

// Usable reports whether the extraction contributes to the combined context.
// Empty extractions are included and contribute the NoRelevantText placeholder.
func (e *Extraction) Usable() bool {
	return e != nil && e.Status != StatusFailed && e.Text != ""
}

// TextExtractor reduces an HTML document to plain text.
type TextExtractor interface {
	// ExtractText returns the cleaned text of the page. An empty string with
	// a nil error means the page parsed but held no usable text.
	// Returns ENOTFOUND if the document has no content root.
	ExtractText(html string) (string, error)
}

// ContentExtractor turns a URL into an Extraction.
type ContentExtractor interface {
	// Extract fetches and cleans a single URL. It never returns nil; failures
	// are reported through the Extraction's status and reason.
	Extract(ctx context.Context, url string) *Extraction
}
