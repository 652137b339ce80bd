// Package http provides an HTTP-based implementation of recipebook.Fetcher
// for retrieving recipe pages.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/griffdawg123/recipebook"
)

// DefaultFetchTimeout is the default total timeout for a page fetch.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements recipebook.Fetcher at compile time.
var _ recipebook.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript, so it is suitable for server-rendered
// pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the total timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// The HTTP status code is intentionally not validated: an error page with a
// non-empty body is passed through to the extraction stage unchanged.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", recipebook.Errorf(recipebook.EINVALIDURL, "URL cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", recipebook.Errorf(recipebook.EINVALIDURL, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", recipebook.Errorf(recipebook.ETIMEOUT, "request timeout")
		}
		return "", recipebook.Errorf(recipebook.ENETWORK, "network error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", recipebook.Errorf(recipebook.ETIMEOUT, "request timeout")
		}
		return "", recipebook.Errorf(recipebook.ENETWORK, "network error: %v", err)
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", recipebook.Errorf(recipebook.EEMPTYCONTENT, "no content found")
	}

	return string(body), nil
}

// isTimeout reports whether err was caused by a deadline rather than some
// other transport failure. Client timeouts surface as net.Error; context
// deadlines as context.DeadlineExceeded.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
