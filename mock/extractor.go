package mock

import "github.com/kavinduUdhara/fbdocs"

var _ fbdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fbdocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*fbdocs.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*fbdocs.ExtractResult, error) {
	return e.ExtractFn(html)
}
