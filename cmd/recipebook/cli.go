package main

import (
	"context"
	"io"
	"time"

	"github.com/griffdawg123/recipebook"
	"github.com/griffdawg123/recipebook/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Pipeline  *pipeline.Pipeline
	Converter recipebook.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log pipeline stages to stderr"`
	Parser  string        `enum:"goquery,trafilatura" default:"goquery" help:"Page parser: goquery (raw body text) or trafilatura (boilerplate removed)"`
	Timeout time.Duration `default:"30s" help:"Page fetch timeout"`

	Extract ExtractCmd `cmd:"" help:"Scrape a recipe page and extract structured recipe data"`
	Page    PageCmd    `cmd:"" help:"Scrape a page and print its extracted text without calling the LLM"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL   string `arg:"" help:"Recipe page URL"`
	Model string `help:"Chat completions model identifier (defaults to openai/gpt-4o)"`
	JSON  bool   `help:"Print the result as JSON"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `short:"m" help:"Render the page HTML as Markdown instead of plain text"`
}
