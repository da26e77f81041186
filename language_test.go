package fbdocs_test

import (
	"testing"

	"github.com/kavinduUdhara/fbdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"swift", "swift"},
		{"ios", "swift"},
		{"IOS", "swift"},
		{"js", "web"},
		{"javascript", "web"},
		{"web", "web"},
		{"android", "kotlin"},
		{"c#", "unity"},
		{"csharp", "unity"},
		{"node.js", "node"},
		{"nodejs", "node"},
		{"flutter", "dart"},
		{"  Kotlin  ", "kotlin"},
		{"rust", "rust"}, // unknown passes through lowercased
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fbdocs.NormalizeLanguage(tt.input))
		})
	}
}

func TestLanguageFromToken(t *testing.T) {
	t.Parallel()

	lang, ok := fbdocs.LanguageFromToken("javascript")
	require.True(t, ok)
	assert.Equal(t, "web", lang)

	_, ok = fbdocs.LanguageFromToken("console")
	assert.False(t, ok)
}

func TestKnownLanguages(t *testing.T) {
	t.Parallel()

	langs := fbdocs.KnownLanguages()
	assert.Contains(t, langs, "swift")
	assert.Contains(t, langs, "web")
	assert.IsNonDecreasing(t, langs)
}

func TestNewSelection_ResolvesAliases(t *testing.T) {
	t.Parallel()

	// "js" must resolve identically to "web" for filtering purposes.
	fromAlias := fbdocs.NewSelection("js")
	fromCanonical := fbdocs.NewSelection("web")

	assert.Equal(t, fromCanonical.List(), fromAlias.List())
	assert.True(t, fromAlias.Contains("web"))
}

func TestFilterBlocks(t *testing.T) {
	t.Parallel()

	blocks := []fbdocs.ContentBlock{
		{HTML: "<h2>Web</h2>", Languages: []string{"web"}, Position: 0},
		{HTML: "<h2>Swift</h2>", Languages: []string{"swift"}, Position: 1},
		{HTML: "<p>Intro</p>", Position: 2},
	}

	t.Run("keeps matching and neutral blocks in order", func(t *testing.T) {
		t.Parallel()

		kept := fbdocs.FilterBlocks(blocks, fbdocs.NewSelection("web"))

		require.Len(t, kept, 2)
		assert.Equal(t, 0, kept[0].Position)
		assert.Equal(t, 2, kept[1].Position)
	})

	t.Run("empty selection keeps everything", func(t *testing.T) {
		t.Parallel()

		kept := fbdocs.FilterBlocks(blocks, fbdocs.NewSelection())
		assert.Equal(t, blocks, kept)
	})

	t.Run("multi-tagged block kept on any match", func(t *testing.T) {
		t.Parallel()

		multi := []fbdocs.ContentBlock{
			{HTML: "<pre/>", Languages: []string{"swift", "kotlin"}, Position: 0},
		}

		kept := fbdocs.FilterBlocks(multi, fbdocs.NewSelection("kotlin"))
		require.Len(t, kept, 1)
	})

	t.Run("result is a subsequence of the input", func(t *testing.T) {
		t.Parallel()

		kept := fbdocs.FilterBlocks(blocks, fbdocs.NewSelection("swift"))

		// Positions must be strictly increasing and drawn from the input.
		last := -1
		for _, b := range kept {
			assert.Greater(t, b.Position, last)
			last = b.Position
		}
	})
}

func TestExtractResult_AvailableLanguages(t *testing.T) {
	t.Parallel()

	res := &fbdocs.ExtractResult{
		Blocks: []fbdocs.ContentBlock{
			{Languages: []string{"web", "swift"}},
			{Languages: []string{"swift"}},
			{},
		},
	}

	assert.Equal(t, []string{"swift", "web"}, res.AvailableLanguages())
}
