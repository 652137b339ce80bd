package mock

import (
	"context"

	"github.com/griffdawg123/recipebook"
)

var _ recipebook.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of recipebook.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
