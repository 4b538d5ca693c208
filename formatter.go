package webask

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ContextSeparator separates the text of consecutive pages in the combined context.
const ContextSeparator = "\n\n"

// DefaultPreviewLength is the number of characters shown by Preview callers
// that have no preference.
const DefaultPreviewLength = 250

// ParseURLs splits newline-separated input into trimmed, non-empty URLs.
// Order and duplicates are preserved.
func ParseURLs(input string) []string {
	var urls []string
	for _, line := range strings.Split(input, "\n") {
		if u := strings.TrimSpace(line); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// JoinContext joins the text of usable extractions in input order.
// Failed extractions contribute nothing.
func JoinContext(exts []*Extraction) string {
	parts := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext.Usable() {
			parts = append(parts, ext.Text)
		}
	}
	return strings.Join(parts, ContextSeparator)
}

// Preview collapses whitespace in text and truncates it to length characters,
// appending "..." when something was cut.
func Preview(text string, length int) string {
	text = CollapseWhitespace(text)
	runes := []rune(text)
	if length < 0 || len(runes) <= length {
		return text
	}
	return string(runes[:length]) + "..."
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims both ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// MinChunkWords is the minimum number of words a text chunk needs to be kept.
// Shorter chunks are mostly labels, buttons and other boilerplate.
const MinChunkWords = 3

// CleanChunks drops chunks with fewer than MinChunkWords words, then joins the
// rest into a single line with all whitespace collapsed.
func CleanChunks(chunks []string) string {
	kept := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if len(strings.Fields(chunk)) >= MinChunkWords {
			kept = append(kept, chunk)
		}
	}
	return CollapseWhitespace(strings.Join(kept, "\n"))
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
