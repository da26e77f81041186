package mock

import "github.com/kavinduUdhara/fbdocs"

var _ fbdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of fbdocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
