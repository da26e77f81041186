package fbdocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Code blocks become fenced blocks with an inferred language hint.
	Convert(html string) (string, error)
}
