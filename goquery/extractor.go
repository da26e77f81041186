// Package goquery implements fbdocs.Extractor for Firebase documentation
// pages using CSS selectors. It locates the main content element, strips
// devsite chrome, and segments the result into language-tagged blocks.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kavinduUdhara/fbdocs"
)

// contentSelectors are tried in order; the first match with substantial
// text wins. They cover devsite pages plus common documentation layouts.
var contentSelectors = []string{
	".devsite-article-body",
	".devsite-main-content",
	`main[role="main"]`,
	"main",
	"article",
	".documentation-content",
	"#main-content",
}

// broadSelectors are last-resort candidates before the body fallback.
// They require more text since they can match most of the page.
var broadSelectors = []string{
	".devsite-wrapper",
}

const (
	minContentChars = 1000
	minBroadChars   = 3000
)

// boilerplateSelectors match navigation and chrome elements that are
// removed before locating content.
var boilerplateSelectors = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	`[role="navigation"]`,
	".devsite-nav",
	".devsite-footer",
	".devsite-header",
	".devsite-banner",
	".devsite-book-nav",
	".devsite-book-nav-wrapper",
	".devsite-mobile-nav",
	".devsite-mobile-nav-bottom",
	".devsite-top-logo-row",
	".devsite-utility-nav",
	".devsite-searchbox",
	".devsite-footer-promos",
	".devsite-footer-utility",
	".breadcrumb",
	".banner",
	".advertisement",
}

// navPhrases identify short container elements that are navigation rendered
// without semantic markup. Containers with substantial text are never
// removed on phrase matches alone.
var navPhrases = []string{
	"build more run more",
	"solutions pricing docs",
	"overview fundamentals",
	"go to console",
	"send feedback",
	"firebase console",
	"get started more",
	"firebase studio",
	"samples community",
	"support blog",
}

const maxNavTextChars = 200

// titleBrandingRe strips the trailing "| Firebase ..." branding from page
// titles.
var titleBrandingRe = regexp.MustCompile(`\s*\|\s*Firebase.*$`)

// Ensure Extractor implements fbdocs.Extractor at compile time.
var _ fbdocs.Extractor = (*Extractor)(nil)

// Extractor extracts main content from Firebase documentation pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the segmented main content.
// When no candidate selector matches substantial content, it falls back to
// the whole document body rather than failing.
func (e *Extractor) Extract(rawHTML string) (*fbdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, fbdocs.Errorf(fbdocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fbdocs.Errorf(fbdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)
	removeBoilerplate(doc)
	content, selector := locate(doc)

	return &fbdocs.ExtractResult{
		Title:    title,
		Blocks:   segmentSelection(content),
		Selector: selector,
	}, nil
}

// extractTitle returns the page title with Firebase branding stripped,
// falling back to the first h1, then to a generic title.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return strings.TrimSpace(titleBrandingRe.ReplaceAllString(title, ""))
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "Firebase Documentation"
}

// removeBoilerplate strips scripts, styles, and navigation chrome from the
// document in place.
func removeBoilerplate(doc *goquery.Document) {
	doc.Find(strings.Join(boilerplateSelectors, ", ")).Remove()

	// Short containers full of navigation phrases survive the selector pass
	// on some layouts; drop those too.
	doc.Find("div, section, aside").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if len(text) > maxNavTextChars {
			return
		}
		for _, phrase := range navPhrases {
			if strings.Contains(text, phrase) {
				s.Remove()
				return
			}
		}
	})
}

// locate finds the main content element. It returns the matched selector,
// or "body" when every candidate fell short.
func locate(doc *goquery.Document) (*goquery.Selection, string) {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 && textLen(sel) >= minContentChars {
			return sel, selector
		}
	}
	for _, selector := range broadSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 && textLen(sel) >= minBroadChars {
			return sel, selector
		}
	}
	return doc.Find("body").First(), "body"
}

// textLen measures the visible text of a selection with whitespace runs
// collapsed, approximating rendered content length.
func textLen(sel *goquery.Selection) int {
	return len(strings.Join(strings.Fields(sel.Text()), " "))
}
