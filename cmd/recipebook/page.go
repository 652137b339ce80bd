package main

import (
	"fmt"

	"github.com/griffdawg123/recipebook"
)

// Run executes the page command: the scrape stage alone, for inspecting
// what the extraction stage would receive.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Pipeline.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Scraping error: %s\n", recipebook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n\n", page.Title)

	if c.Markdown {
		md, err := deps.Converter.Convert(page.HTML)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	fmt.Fprintln(deps.Stdout, page.Content)
	return nil
}
