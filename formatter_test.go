package webask_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webask"
	"github.com/stretchr/testify/assert"
)

func TestParseURLs(t *testing.T) {
	t.Parallel()

	t.Run("trims and drops blank lines", func(t *testing.T) {
		t.Parallel()

		input := "  https://a.example/page  \n\n\thttps://b.example\r\n   \n"

		assert.Equal(t, []string{"https://a.example/page", "https://b.example"}, webask.ParseURLs(input))
	})

	t.Run("keeps duplicates in order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"b", "a", "b"}, webask.ParseURLs("b\na\nb"))
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, webask.ParseURLs("   \n  "))
	})
}

func TestJoinContext(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no extractions", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", webask.JoinContext(nil))
	})

	t.Run("joins usable extractions with blank line in order", func(t *testing.T) {
		t.Parallel()

		exts := []*webask.Extraction{
			{URL: "a", Status: webask.StatusSuccess, Text: "first page"},
			{URL: "b", Status: webask.StatusFailed, Reason: webask.ReasonTimeout},
			{URL: "c", Status: webask.StatusEmpty, Text: webask.NoRelevantText},
			{URL: "d", Status: webask.StatusSuccess, Text: "last page"},
		}

		assert.Equal(t, "first page\n\n"+webask.NoRelevantText+"\n\nlast page", webask.JoinContext(exts))
	})

	t.Run("returns empty string when every extraction failed", func(t *testing.T) {
		t.Parallel()

		exts := []*webask.Extraction{
			{URL: "a", Status: webask.StatusFailed, Reason: webask.ReasonStatus},
			{URL: "b", Status: webask.StatusFailed, Reason: webask.ReasonNotHTML},
		}

		assert.Equal(t, "", webask.JoinContext(exts))
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace in short text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", webask.Preview("  a\n\nb\t c ", 250))
	})

	t.Run("truncates long text with ellipsis", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 300)

		got := webask.Preview(text, webask.DefaultPreviewLength)

		assert.Equal(t, strings.Repeat("x", 250)+"...", got)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héll...", webask.Preview("héllo", 4))
	})

	t.Run("does not add ellipsis at exact length", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abcd", webask.Preview("abcd", 4))
	})
}

func TestCleanChunks(t *testing.T) {
	t.Parallel()

	t.Run("drops chunks of two words or fewer", func(t *testing.T) {
		t.Parallel()

		got := webask.CleanChunks([]string{"Menu", "Read more", "three word chunk", "", "  four   words in here "})

		assert.Equal(t, "three word chunk four words in here", got)
	})

	t.Run("returns empty string when nothing is kept", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", webask.CleanChunks([]string{"Home", "About us"}))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webask.ComputeHash("same text"), webask.ComputeHash("same text"))
	assert.NotEqual(t, webask.ComputeHash("some text"), webask.ComputeHash("other text"))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", webask.FormatBytes(512))
	assert.Equal(t, "1.5 KB", webask.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", webask.FormatBytes(2*1024*1024))
}
