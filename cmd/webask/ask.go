package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/webask"
	"github.com/fwojciec/webask/qa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps.Stdin)
	if err != nil {
		return err
	}

	svc := &qa.Service{Extractor: deps.Extractor, Answerer: deps.Answerer}
	result, err := svc.Ask(deps.Ctx, urls, strings.TrimSpace(c.Question))
	if err != nil {
		return err
	}

	if deps.Logger != nil {
		deps.Logger.Info("submission",
			"id", result.ID,
			"urls", len(urls),
			"context_chars", len(result.Context),
		)
	}

	if result.Err != nil {
		return result.Err
	}

	fmt.Fprintln(deps.Stdout, result.Answer)
	return nil
}

// collectURLs merges --url flags with the lines of --urls-file, keeping order.
func (c *AskCmd) collectURLs(stdin io.Reader) ([]string, error) {
	var urls []string
	for _, u := range c.URLs {
		urls = append(urls, webask.ParseURLs(u)...)
	}

	if c.URLsFile == "" {
		return urls, nil
	}

	var data []byte
	var err error
	if c.URLsFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(c.URLsFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read URLs: %w", err)
	}

	return append(urls, webask.ParseURLs(string(data))...), nil
}
