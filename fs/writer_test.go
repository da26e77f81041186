package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kavinduUdhara/fbdocs"
	"github.com/kavinduUdhara/fbdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		title     string
		languages []string
		want      string
	}{
		{
			name: "docs path segments",
			url:  "https://firebase.google.com/docs/ai-logic/get-started",
			want: "ai-logic-get-started.md",
		},
		{
			name: "query parameters appended",
			url:  "https://firebase.google.com/docs/ai-logic/get-started?api=vertex",
			want: "ai-logic-get-started-api-vertex.md",
		},
		{
			name:      "language suffix",
			url:       "https://firebase.google.com/docs/ai-logic/get-started?api=vertex",
			languages: []string{"swift", "web"},
			want:      "ai-logic-get-started-api-vertex-swift-web.md",
		},
		{
			name: "path without docs segment",
			url:  "https://example.com/guides/auth",
			want: "guides-auth.md",
		},
		{
			name:  "empty path falls back to title slug",
			url:   "https://firebase.google.com/",
			title: "Firebase Documentation",
			want:  "firebase-documentation.md",
		},
		{
			name:  "empty path and title",
			url:   "https://firebase.google.com/",
			title: "",
			want:  "index.md",
		},
		{
			name: "special characters removed",
			url:  "https://firebase.google.com/docs/auth/c++/start",
			want: "auth-c-start.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.Filename(tt.url, tt.title, tt.languages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	t.Run("includes metadata header", func(t *testing.T) {
		t.Parallel()

		doc := &fbdocs.Document{
			SourceURL: "https://firebase.google.com/docs/auth",
			Title:     "Firebase Authentication",
			Content:   "body text\n",
			FetchedAt: fetchedAt,
		}

		out := fs.FormatDocument(doc)
		assert.Contains(t, out, "# Firebase Authentication\n")
		assert.Contains(t, out, "**Source:** [Firebase Documentation](https://firebase.google.com/docs/auth)")
		assert.Contains(t, out, "**Extracted on:** 2026-08-25 10:30:00")
		assert.NotContains(t, out, "**Languages:**")
		assert.Contains(t, out, "\n\n---\n\nbody text\n")
	})

	t.Run("lists selected languages when filtering", func(t *testing.T) {
		t.Parallel()

		doc := &fbdocs.Document{
			SourceURL: "https://firebase.google.com/docs/auth",
			Title:     "Firebase Authentication",
			Languages: []string{"swift", "web"},
			Content:   "body\n",
			FetchedAt: fetchedAt,
		}

		out := fs.FormatDocument(doc)
		assert.Contains(t, out, "**Languages:** swift, web")
	})
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file under base directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		doc := &fbdocs.Document{
			SourceURL: "https://firebase.google.com/docs/auth/start",
			Title:     "Get started with Auth",
			Content:   "# Get started\n",
			FetchedAt: time.Now(),
		}

		require.NoError(t, w.CreateDocument(context.Background(), doc))

		data, err := os.ReadFile(filepath.Join(dir, "auth-start.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Get started with Auth")
	})

	t.Run("records written path on the document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		doc := &fbdocs.Document{
			SourceURL: "https://firebase.google.com/docs/auth/start",
			Title:     "Get started with Auth",
			Content:   "# Get started\n",
			FetchedAt: time.Now(),
		}

		require.NoError(t, w.CreateDocument(context.Background(), doc))
		assert.Equal(t, filepath.Join(dir, "auth-start.md"), doc.Path)
		assert.FileExists(t, doc.Path)
	})

	t.Run("creates missing output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(dir)

		doc := &fbdocs.Document{
			SourceURL: "https://firebase.google.com/docs/auth",
			Content:   "body\n",
			FetchedAt: time.Now(),
		}

		require.NoError(t, w.CreateDocument(context.Background(), doc))
		assert.DirExists(t, dir)
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.CreateDocument(context.Background(), &fbdocs.Document{})
		require.Error(t, err)
		assert.Equal(t, fbdocs.EINVALID, fbdocs.ErrorCode(err))
	})
}
