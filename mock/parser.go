package mock

import "github.com/griffdawg123/recipebook"

var _ recipebook.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of recipebook.PageParser.
type PageParser struct {
	ParseFn func(html, url string) (*recipebook.WebPage, error)
}

func (p *PageParser) Parse(html, url string) (*recipebook.WebPage, error) {
	return p.ParseFn(html, url)
}
