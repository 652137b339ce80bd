// Package pipeline sequences page scraping and LLM extraction for a single
// URL. Data flows strictly forward: URL -> WebPage -> RecipeInfo. Nothing is
// retried and no state survives a run.
package pipeline

import (
	"context"

	"github.com/griffdawg123/recipebook"
)

// Pipeline wires the two stages together. All fields are required.
type Pipeline struct {
	Fetcher   recipebook.Fetcher
	Parser    recipebook.PageParser
	Extractor recipebook.RecipeExtractor
}

// Result is the outcome of a pipeline run. Page is set whenever the scrape
// stage succeeded, even if extraction later failed, so callers can report
// partial progress alongside an extraction error.
type Result struct {
	Page   *recipebook.WebPage
	Recipe *recipebook.RecipeInfo
}

// Scrape fetches the URL and parses the response into a WebPage.
func (p *Pipeline) Scrape(ctx context.Context, url string) (*recipebook.WebPage, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return p.Parser.Parse(html, url)
}

// Run executes the full pipeline. A scrape failure halts the run and the
// extraction stage is never attempted. An extraction failure returns the
// error together with a Result carrying the scraped page.
func (p *Pipeline) Run(ctx context.Context, url string) (*Result, error) {
	page, err := p.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	recipe, err := p.Extractor.ExtractRecipe(ctx, page.Content)
	if err != nil {
		return &Result{Page: page}, err
	}

	return &Result{Page: page, Recipe: recipe}, nil
}
