package goquery

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/kavinduUdhara/fbdocs"
)

// SegmentBlocks parses an HTML fragment and splits it into heading-delimited
// content blocks with inferred language tags. It is used by Extract and by
// other extractor implementations that locate content through different
// means.
func SegmentBlocks(fragment string) ([]fbdocs.ContentBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fbdocs.Errorf(fbdocs.EINVALID, "failed to parse HTML: %v", err)
	}
	return segmentSelection(doc.Find("body").First()), nil
}

// segmentSelection splits the located content element into blocks. A block
// runs from one heading to the heading that closes its section: a heading
// of the same or higher level, or any heading that names a programming
// language. Content before the first heading forms the first block.
func segmentSelection(content *goquery.Selection) []fbdocs.ContentBlock {
	if content.Length() == 0 {
		return nil
	}

	container := segmentContainer(content)
	if container == nil {
		// No headings at all: the whole content is one block.
		inner, err := content.Html()
		if err != nil || strings.TrimSpace(inner) == "" {
			return nil
		}
		return []fbdocs.ContentBlock{makeBlock(inner, 0, nil)}
	}

	var blocks []fbdocs.ContentBlock
	var current strings.Builder
	var headingTags []string
	currentLevel := 0

	flush := func() {
		if strings.TrimSpace(current.String()) == "" {
			current.Reset()
			return
		}
		blocks = append(blocks, makeBlock(current.String(), len(blocks), headingTags))
		current.Reset()
	}

	container.Children().Each(func(_ int, child *goquery.Selection) {
		if level := headingLevel(child); level > 0 {
			tags := headingLanguages(child)
			if currentLevel == 0 || level <= currentLevel || len(tags) > 0 {
				flush()
				headingTags = tags
				currentLevel = level
			}
		}
		if fragment, err := goquery.OuterHtml(child); err == nil {
			current.WriteString(fragment)
		}
	})
	flush()

	return blocks
}

// segmentContainer returns the element whose direct children are walked
// during segmentation, or nil when the content has no headings. Headings are
// sometimes nested a wrapper or two below the located content element;
// descend only while a single child holds every heading and its siblings
// carry no text, so content outside the heading-bearing subtree is never
// dropped. When headings sit in a wrapper next to textual siblings, the
// current level is kept and the wrapper is treated as plain content.
func segmentContainer(content *goquery.Selection) *goquery.Selection {
	if content.Find("h1, h2, h3, h4, h5, h6").Length() == 0 {
		return nil
	}

	container := content
	for !hasDirectHeading(container) {
		next := soleHeadingChild(container)
		if next == nil {
			break
		}
		container = next
	}
	return container
}

// hasDirectHeading reports whether any direct child is a heading element.
func hasDirectHeading(s *goquery.Selection) bool {
	direct := false
	s.Children().Each(func(_ int, child *goquery.Selection) {
		if headingLevel(child) > 0 {
			direct = true
		}
	})
	return direct
}

// soleHeadingChild returns the one child containing headings when every
// sibling is free of text, nil otherwise.
func soleHeadingChild(s *goquery.Selection) *goquery.Selection {
	var match *goquery.Selection
	descend := true
	s.Children().Each(func(_ int, child *goquery.Selection) {
		switch {
		case child.Find("h1, h2, h3, h4, h5, h6").Length() > 0:
			if match != nil {
				descend = false
				return
			}
			match = child
		case strings.TrimSpace(child.Text()) != "":
			descend = false
		}
	})
	if !descend {
		return nil
	}
	return match
}

// makeBlock builds a tagged block from rendered HTML, combining the section
// heading's language tags with tags found on code elements inside it.
func makeBlock(html string, position int, headingTags []string) fbdocs.ContentBlock {
	tags := make(map[string]bool, len(headingTags))
	for _, tag := range headingTags {
		tags[tag] = true
	}
	for _, tag := range codeLanguages(html) {
		tags[tag] = true
	}

	var langs []string
	for tag := range tags {
		langs = append(langs, tag)
	}
	sort.Strings(langs)

	return fbdocs.ContentBlock{
		HTML:      html,
		Languages: langs,
		Position:  position,
	}
}

// headingLevel returns 1-6 for h1-h6 elements and 0 otherwise.
func headingLevel(s *goquery.Selection) int {
	name := goquery.NodeName(s)
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// headingLanguages infers language tags from a heading's text. Matching is
// on whole word tokens so that e.g. "Go to the console" does not tag "go".
func headingLanguages(heading *goquery.Selection) []string {
	return languagesFromText(heading.Text())
}

// languagesFromText tokenizes free text and resolves each token against the
// language alias table.
func languagesFromText(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == ','
	})

	seen := make(map[string]bool)
	var langs []string
	for _, token := range tokens {
		token = strings.Trim(token, "()[]{}:;!?\"'&")
		token = strings.TrimRight(token, ".")
		if lang, ok := fbdocs.LanguageFromToken(token); ok && !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// codeLanguages collects language tags from code-block class names and
// data-language attributes within a block's HTML.
func codeLanguages(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)

	doc.Find("code, pre").Each(func(_ int, s *goquery.Selection) {
		classes, _ := s.Attr("class")
		for _, token := range strings.Fields(strings.ToLower(classes)) {
			token = strings.TrimPrefix(token, "language-")
			token = strings.TrimPrefix(token, "lang-")
			if lang, ok := fbdocs.LanguageFromToken(token); ok {
				seen[lang] = true
			}
		}
	})

	doc.Find("[data-language]").Each(func(_ int, s *goquery.Selection) {
		if value, ok := s.Attr("data-language"); ok {
			if lang, ok := fbdocs.LanguageFromToken(value); ok {
				seen[lang] = true
			}
		}
	})

	var langs []string
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
