package mock

import (
	"context"

	"github.com/kavinduUdhara/fbdocs"
)

var _ fbdocs.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of fbdocs.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *fbdocs.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *fbdocs.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
