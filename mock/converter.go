package mock

import "github.com/griffdawg123/recipebook"

var _ recipebook.Converter = (*Converter)(nil)

// Converter is a mock implementation of recipebook.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
