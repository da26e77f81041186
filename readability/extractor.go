// Package readability implements fbdocs.Extractor using go-readability.
// It handles generic article pages that don't follow the devsite layout the
// selector-based extractor targets.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/kavinduUdhara/fbdocs"
	"github.com/kavinduUdhara/fbdocs/goquery"
)

// Ensure Extractor implements fbdocs.Extractor at compile time.
var _ fbdocs.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the segmented main content.
func (e *Extractor) Extract(rawHTML string) (*fbdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, fbdocs.Errorf(fbdocs.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	blocks, err := goquery.SegmentBlocks(article.Content)
	if err != nil {
		return nil, err
	}

	return &fbdocs.ExtractResult{
		Title:    article.Title,
		Blocks:   blocks,
		Selector: "readability",
	}, nil
}
