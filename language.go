package fbdocs

import (
	"sort"
	"strings"
)

// languageAliases maps each canonical language identifier to the aliases
// that may appear in tab labels, headings, and code-block class names.
// Every canonical identifier is also its own alias.
var languageAliases = map[string][]string{
	"swift":  {"swift", "ios"},
	"kotlin": {"kotlin", "android"},
	"java":   {"java"},
	"web":    {"web", "javascript", "js"},
	"dart":   {"dart", "flutter"},
	"unity":  {"unity", "c#", "csharp"},
	"python": {"python"},
	"go":     {"go"},
	"php":    {"php"},
	"ruby":   {"ruby"},
	"node":   {"node", "nodejs", "node.js"},
}

// aliasIndex maps each alias to its canonical identifier.
var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range languageAliases {
		for _, alias := range aliases {
			idx[alias] = canonical
		}
	}
	return idx
}()

// NormalizeLanguage resolves a user-facing language alias to its canonical
// identifier (e.g. "js" -> "web", "ios" -> "swift"). Unknown input is
// returned lowercased and trimmed, unchanged otherwise.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if canonical, ok := aliasIndex[lang]; ok {
		return canonical
	}
	return lang
}

// KnownLanguages returns all canonical language identifiers, sorted.
func KnownLanguages() []string {
	langs := make([]string, 0, len(languageAliases))
	for lang := range languageAliases {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// LanguageFromToken resolves a single word token to a canonical language
// identifier. Unlike NormalizeLanguage it returns false for unknown tokens,
// so callers scanning free text don't tag arbitrary words.
func LanguageFromToken(token string) (string, bool) {
	canonical, ok := aliasIndex[strings.ToLower(strings.TrimSpace(token))]
	return canonical, ok
}

// Selection is a set of canonical language identifiers chosen by the user.
// The empty selection means no filtering.
type Selection map[string]struct{}

// NewSelection builds a Selection from user input, resolving aliases to
// canonical identifiers.
func NewSelection(langs ...string) Selection {
	sel := make(Selection, len(langs))
	for _, lang := range langs {
		if normalized := NormalizeLanguage(lang); normalized != "" {
			sel[normalized] = struct{}{}
		}
	}
	return sel
}

// Contains reports whether the canonical identifier is in the selection.
func (s Selection) Contains(lang string) bool {
	_, ok := s[lang]
	return ok
}

// List returns the selected identifiers, sorted.
func (s Selection) List() []string {
	langs := make([]string, 0, len(s))
	for lang := range s {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// FilterBlocks applies the language selection to content blocks. A block is
// kept iff it is language-neutral (no tags) or any of its tags is selected.
// The empty selection keeps everything. The result is an order-preserving
// subsequence of the input.
func FilterBlocks(blocks []ContentBlock, sel Selection) []ContentBlock {
	if len(sel) == 0 {
		return blocks
	}

	kept := make([]ContentBlock, 0, len(blocks))
	for _, b := range blocks {
		if !b.Tagged() {
			kept = append(kept, b)
			continue
		}
		for _, lang := range b.Languages {
			if sel.Contains(lang) {
				kept = append(kept, b)
				break
			}
		}
	}
	return kept
}
