package main

import (
	"fmt"

	"github.com/fwojciec/webask"
	"github.com/fwojciec/webask/scrape"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var urls []string
	for _, u := range c.URLs {
		urls = append(urls, webask.ParseURLs(u)...)
	}

	exts := scrape.ExtractAll(deps.Ctx, deps.Extractor, urls)

	usable := 0
	for _, ext := range exts {
		if !ext.Usable() {
			fmt.Fprintf(deps.Stdout, "[%s] %s: %s\n\n", ext.Status, ext.URL, failureText(ext))
			continue
		}
		usable++

		fmt.Fprintf(deps.Stdout, "[%s] %s (%s, hash %s)\n", ext.Status, ext.URL, webask.FormatBytes(len(ext.Text)), ext.ContentHash)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "%s\n\n", ext.Text)
		} else {
			fmt.Fprintf(deps.Stdout, "%s\n\n", webask.Preview(ext.Text, webask.DefaultPreviewLength))
		}
	}

	if usable == 0 {
		return webask.Errorf(webask.ENOCONTENT, "No valid content found from the provided URLs.")
	}
	return nil
}

func failureText(ext *webask.Extraction) string {
	if ext.Err == nil {
		return string(ext.Reason)
	}
	return fmt.Sprintf("%s (%s)", ext.Reason, webask.ErrorMessage(ext.Err))
}
