// Package fs writes extracted documents as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kavinduUdhara/fbdocs"
)

var (
	nonWordRe  = regexp.MustCompile(`[^\w\s-]`)
	collapseRe = regexp.MustCompile(`[-\s]+`)
)

// Filename derives the output file name from the source URL and the selected
// languages. Path segments after "docs" (or the whole path) are dash-joined,
// query parameters are appended as key-value pairs, and selected languages
// are appended last. Falls back to a slug of the title for URLs without a
// usable path.
//
// Example: https://firebase.google.com/docs/ai-logic/get-started?api=vertex
// with languages [swift web] becomes ai-logic-get-started-api-vertex-swift-web.md
func Filename(rawURL, title string, languages []string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fbdocs.Errorf(fbdocs.EINVALID, "invalid source URL: %v", err)
	}

	parts := splitPath(u.Path)
	for i, part := range parts {
		if part == "docs" {
			parts = parts[i+1:]
			break
		}
	}

	base := strings.Join(parts, "-")
	if base == "" {
		base = strings.ToLower(title)
	}
	base = slug(base)
	if base == "" {
		base = "index"
	}

	// Query parameters distinguish variants of the same page, e.g.
	// get-started?api=vertex vs get-started?api=dev.
	for _, kv := range queryPairs(u.RawQuery) {
		base += "-" + kv
	}

	if len(languages) > 0 {
		base += "-" + strings.Join(languages, "-")
	}

	return base + ".md", nil
}

// splitPath returns the non-empty segments of a URL path.
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// queryPairs returns "key-value" fragments in the order they appear in the
// raw query, keeping file names deterministic.
func queryPairs(rawQuery string) []string {
	if rawQuery == "" {
		return nil
	}

	var pairs []string
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		key = slug(key)
		value = slug(value)
		if key == "" || value == "" {
			continue
		}
		pairs = append(pairs, key+"-"+value)
	}
	return pairs
}

// slug makes a string safe for use in a file name.
func slug(s string) string {
	s = nonWordRe.ReplaceAllString(s, "")
	s = collapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatDocument renders a document with its metadata header.
func FormatDocument(doc *fbdocs.Document) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n\n**Source:** [Firebase Documentation](")
	b.WriteString(doc.SourceURL)
	b.WriteString(")  \n**Extracted on:** ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02 15:04:05"))
	if len(doc.Languages) > 0 {
		b.WriteString("  \n**Languages:** ")
		b.WriteString(strings.Join(doc.Languages, ", "))
	}
	b.WriteString("\n\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements fbdocs.DocumentWriter at compile time.
var _ fbdocs.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write if it does not exist.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk as a markdown file and records
// the resulting path on the document.
func (w *Writer) CreateDocument(ctx context.Context, doc *fbdocs.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	name, err := Filename(doc.SourceURL, doc.Title, doc.Languages)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, []byte(FormatDocument(doc)), 0644); err != nil {
		return err
	}

	doc.Path = path
	return nil
}
