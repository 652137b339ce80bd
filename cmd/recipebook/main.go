package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/griffdawg123/recipebook"
	"github.com/griffdawg123/recipebook/goquery"
	"github.com/griffdawg123/recipebook/htmltomarkdown"
	rbhttp "github.com/griffdawg123/recipebook/http"
	"github.com/griffdawg123/recipebook/openrouter"
	"github.com/griffdawg123/recipebook/pipeline"
	rbslog "github.com/griffdawg123/recipebook/slog"
	"github.com/griffdawg123/recipebook/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// APIKey authenticates the chat completions call. When empty, Run
	// loads it from the OPENROUTER_API_KEY environment variable after
	// .env processing. Set explicitly in tests.
	APIKey string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipebook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipebook --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// kong reports the selected command as e.g. "extract <url>".
	selected, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Optional .env file, same contract as the environment itself.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var fetcher recipebook.Fetcher = rbhttp.NewFetcher(rbhttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		fetcher = rbslog.NewLoggingFetcher(fetcher, logger)
	}

	var pageParser recipebook.PageParser
	switch cli.Parser {
	case "trafilatura":
		pageParser = trafilatura.NewParser()
	default:
		pageParser = goquery.NewParser()
	}

	deps.Pipeline = &pipeline.Pipeline{
		Fetcher: fetcher,
		Parser:  pageParser,
	}
	deps.Converter = htmltomarkdown.NewConverter()

	if selected == "extract" {
		apiKey := m.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENROUTER_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENROUTER_API_KEY environment variable not set. Get an API key at https://openrouter.ai/keys")
			return fmt.Errorf("OPENROUTER_API_KEY not set")
		}

		var opts []openrouter.Option
		if cli.Extract.Model != "" {
			opts = append(opts, openrouter.WithModel(cli.Extract.Model))
		}

		var extractor recipebook.RecipeExtractor = openrouter.NewExtractor(apiKey, opts...)
		if cli.Verbose {
			extractor = rbslog.NewLoggingExtractor(extractor, logger)
		}
		deps.Pipeline.Extractor = extractor
	}

	return kongCtx.Run(deps)
}
