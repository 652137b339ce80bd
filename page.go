package recipebook

import "context"

// NoTitle is the title used when a document contains no <title> element.
const NoTitle = "No title found"

// WebPage is the normalized record of a fetched document. Content is the
// visible-text projection of HTML. A WebPage is immutable once constructed
// and owned solely by the caller that receives it.
type WebPage struct {
	URL     string
	Title   string
	Content string
	HTML    string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// An empty URL fails with EINVALIDURL before any network I/O; a body
	// that is empty after trimming fails with EEMPTYCONTENT. The HTTP
	// status code is not validated.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PageParser builds a WebPage from raw HTML.
type PageParser interface {
	// Parse extracts the document title and the text content of the body.
	// A missing <title> yields NoTitle; a document without a body tag
	// falls back to the raw HTML string as content.
	Parse(html, url string) (*WebPage, error)
}
