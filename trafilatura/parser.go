// Package trafilatura provides a boilerplate-removing implementation of
// recipebook.PageParser. Unlike the default goquery parser it strips
// navigation, scripts, and other non-content markup before the text reaches
// the LLM, at the cost of occasionally dropping page furniture that a recipe
// hides details in.
package trafilatura

import (
	"strings"

	"github.com/griffdawg123/recipebook"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Parser implements recipebook.PageParser at compile time.
var _ recipebook.PageParser = (*Parser)(nil)

// Parser wraps go-trafilatura to build a WebPage from raw HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the main content and metadata title from rawHTML.
// An empty extraction result falls back to the raw HTML string as content,
// mirroring the default parser's no-body fallback.
func (p *Parser) Parse(rawHTML, url string) (*recipebook.WebPage, error) {
	if rawHTML == "" {
		return nil, recipebook.Errorf(recipebook.EPARSE, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, recipebook.Errorf(recipebook.EPARSE, "failed to extract content: %v", err)
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = recipebook.NoTitle
	}

	content := result.ContentText
	if strings.TrimSpace(content) == "" {
		content = rawHTML
	}

	return &recipebook.WebPage{
		URL:     url,
		Title:   title,
		Content: content,
		HTML:    rawHTML,
	}, nil
}
