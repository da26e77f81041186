package fbdocs

import (
	"context"
	"time"
)

// Document represents one extracted documentation page, ready to be written
// to disk as Markdown.
type Document struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Languages []string  `json:"languages"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`

	// Path is where the document was written. Set by DocumentWriter
	// implementations on a successful write.
	Path string `json:"path"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}
