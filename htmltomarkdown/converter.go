// Package htmltomarkdown wraps html-to-markdown to convert documentation
// HTML to Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/kavinduUdhara/fbdocs"
)

// Ensure Converter implements fbdocs.Converter at compile time.
var _ fbdocs.Converter = (*Converter)(nil)

// Converter converts HTML to Markdown with normalized code fences.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// extraNewlinesRe collapses runs of three or more newlines left behind by
// removed navigation elements.
var extraNewlinesRe = regexp.MustCompile(`\n{3,}`)

// Convert transforms HTML content into Markdown. Code blocks become fenced
// blocks carrying a language hint when one can be inferred from the markup.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", fbdocs.Errorf(fbdocs.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(normalizeCodeFences(html))
	if err != nil {
		return "", err
	}

	result = extraNewlinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result) + "\n", nil
}

// normalizeCodeFences rewrites code elements so the markdown converter emits
// fences with a language hint. Documentation sites mark languages in several
// ways (language-* classes, bare alias classes like "prettyprint swift",
// data-language attributes); all are normalized to a language-* class on the
// inner code element. Returns the input unchanged if it cannot be parsed.
func normalizeCodeFences(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := pre.Find("code").First()
		if code.Length() == 0 {
			return
		}

		lang := fenceLanguage(pre, code)
		if lang == "" {
			return
		}
		code.SetAttr("class", "language-"+lang)
	})

	normalized, err := doc.Find("body").Html()
	if err != nil {
		return html
	}
	return normalized
}

// fenceLanguage infers the fence hint for a code block. Existing language-*
// classes win; otherwise alias class tokens and data-language attributes are
// consulted. Aliases that are not valid fence hints (e.g. "c#") resolve to
// their canonical identifier.
func fenceLanguage(pre, code *goquery.Selection) string {
	for _, sel := range []*goquery.Selection{code, pre} {
		classes, _ := sel.Attr("class")
		for _, token := range strings.Fields(strings.ToLower(classes)) {
			if hint := strings.TrimPrefix(strings.TrimPrefix(token, "language-"), "lang-"); hint != token {
				return hint
			}
		}
	}

	for _, sel := range []*goquery.Selection{code, pre} {
		classes, _ := sel.Attr("class")
		for _, token := range strings.Fields(strings.ToLower(classes)) {
			if _, ok := fbdocs.LanguageFromToken(token); ok {
				return fenceHint(token)
			}
		}
		if value, ok := sel.Attr("data-language"); ok {
			if _, known := fbdocs.LanguageFromToken(value); known {
				return fenceHint(value)
			}
		}
	}

	return ""
}

// fenceHint keeps the original alias when it is a usable fence hint and
// falls back to the canonical identifier when it is not.
func fenceHint(alias string) string {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if strings.ContainsAny(alias, "#+ ") {
		return fbdocs.NormalizeLanguage(alias)
	}
	return alias
}
