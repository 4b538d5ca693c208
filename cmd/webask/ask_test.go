package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/webask"
	main "github.com/fwojciec/webask/cmd/webask"
	"github.com/fwojciec/webask/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageExtractor(calls *[]string) *mock.ContentExtractor {
	return &mock.ContentExtractor{
		ExtractFn: func(_ context.Context, url string) *webask.Extraction {
			if calls != nil {
				*calls = append(*calls, url)
			}
			return &webask.Extraction{URL: url, Status: webask.StatusSuccess, Text: "text of " + url}
		},
	}
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		var gotContext, gotQuestion string
		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, text, question string) (string, error) {
				gotContext, gotQuestion = text, question
				return "The answer.", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: pageExtractor(nil),
			Answerer:  answerer,
		}

		cmd := &main.AskCmd{URLs: []string{"https://a.example"}, Question: "  What is it?  "}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "The answer.\n", stdout.String())
		assert.Equal(t, "text of https://a.example", gotContext)
		assert.Equal(t, "What is it?", gotQuestion)
	})

	t.Run("reads URLs from stdin after flag URLs", func(t *testing.T) {
		t.Parallel()

		var calls []string
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Stdin:     strings.NewReader("https://b.example\n\n  https://c.example  \n"),
			Extractor: pageExtractor(&calls),
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (string, error) { return "ok", nil },
			},
		}

		cmd := &main.AskCmd{URLs: []string{"https://a.example"}, URLsFile: "-", Question: "q"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, calls)
	})

	t.Run("reads URLs from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		require.NoError(t, os.WriteFile(path, []byte("https://a.example\nhttps://a.example\n"), 0o600))

		var calls []string
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: pageExtractor(&calls),
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (string, error) { return "ok", nil },
			},
		}

		cmd := &main.AskCmd{URLsFile: path, Question: "q"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://a.example"}, calls)
	})

	t.Run("returns error for unreadable URL file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: pageExtractor(nil),
			Answerer:  &mock.Answerer{},
		}

		cmd := &main.AskCmd{URLsFile: filepath.Join(t.TempDir(), "missing.txt"), Question: "q"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, main.FormatError(err), "failed to read URLs")
		assert.Empty(t, stderr.String())
	})

	t.Run("warns when no page yields content", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Extractor: &mock.ContentExtractor{
				ExtractFn: func(_ context.Context, url string) *webask.Extraction {
					return &webask.Extraction{URL: url, Status: webask.StatusFailed, Reason: webask.ReasonStatus}
				},
			},
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (string, error) {
					t.Fatal("answerer must not be called")
					return "", nil
				},
			},
		}

		cmd := &main.AskCmd{URLs: []string{"https://a.example"}, Question: "q"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webask.ENOCONTENT, webask.ErrorCode(err))
		assert.Equal(t, "No valid content found from the provided URLs.", main.FormatError(err))
		assert.Empty(t, stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("returns answerer failure without printing it", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: pageExtractor(nil),
			Answerer: &mock.Answerer{
				AnswerFn: func(context.Context, string, string) (string, error) {
					return "", webask.Errorf(webask.ERATELIMIT, "Error: API quota exceeded.")
				},
			},
		}

		cmd := &main.AskCmd{URLs: []string{"https://a.example"}, Question: "q"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, webask.ERATELIMIT, webask.ErrorCode(err))
		assert.Equal(t, "Error: API quota exceeded.", main.FormatError(err))
		assert.Empty(t, stderr.String())
		assert.Empty(t, stdout.String())
	})
}
