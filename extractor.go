package fbdocs

import "sort"

// ContentBlock is a contiguous HTML fragment treated as one unit for
// language filtering. Blocks are heading-delimited sections of the main
// content, in document order.
type ContentBlock struct {
	// HTML is the block's markup, including its heading if it has one.
	HTML string

	// Languages holds the canonical language identifiers inferred for this
	// block. An empty slice means the block is language-neutral.
	Languages []string

	// Position is the block's index in document order.
	Position int
}

// Tagged reports whether the block carries any language tag.
func (b *ContentBlock) Tagged() bool {
	return len(b.Languages) > 0
}

// ExtractResult holds the located main content, segmented into blocks.
type ExtractResult struct {
	// Title is the page title with site branding stripped.
	Title string

	// Blocks are the content blocks in document order.
	Blocks []ContentBlock

	// Selector is the CSS selector that located the main content,
	// or "body" when extraction fell back to the whole document.
	Selector string
}

// AvailableLanguages returns the sorted union of language tags across all
// blocks. This is the set offered for interactive selection.
func (r *ExtractResult) AvailableLanguages() []string {
	seen := make(map[string]bool)
	for _, b := range r.Blocks {
		for _, lang := range b.Languages {
			seen[lang] = true
		}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Extractor locates the main content of an HTML page, removes boilerplate,
// and segments it into language-tagged blocks.
type Extractor interface {
	// Extract processes raw HTML and returns the segmented main content.
	// Failure to locate main content is not an error; implementations fall
	// back to the whole document body rather than failing.
	Extract(html string) (*ExtractResult, error)
}
