// Package goquery provides a goquery-based implementation of
// recipebook.PageParser. It is the default parser: the title comes from the
// first <title> element and the content from the text nodes of the first
// <body> element, with no boilerplate filtering.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/griffdawg123/recipebook"
)

// Ensure Parser implements recipebook.PageParser at compile time.
var _ recipebook.PageParser = (*Parser)(nil)

// Parser builds a WebPage from raw HTML using CSS selection.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the document title and body text from rawHTML.
// A document without a <title> gets recipebook.NoTitle; a document without
// a body tag falls back to the raw HTML string as content.
func (p *Parser) Parse(rawHTML, url string) (*recipebook.WebPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, recipebook.Errorf(recipebook.EPARSE, "failed to parse HTML: %v", err)
	}

	title := recipebook.NoTitle
	if sel := doc.Find("title").First(); sel.Length() > 0 {
		title = sel.Text()
	}

	// html.Parse synthesizes a <body> element even when the source markup
	// has none, so presence must be detected in the source rather than in
	// the parsed tree.
	content := rawHTML
	if hasBodyTag(rawHTML) {
		if sel := doc.Find("body").First(); sel.Length() > 0 {
			content = sel.Text()
		}
	}

	return &recipebook.WebPage{
		URL:     url,
		Title:   title,
		Content: content,
		HTML:    rawHTML,
	}, nil
}

// hasBodyTag reports whether the source markup contains an explicit body tag.
func hasBodyTag(rawHTML string) bool {
	return strings.Contains(strings.ToLower(rawHTML), "<body")
}
