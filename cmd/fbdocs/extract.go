package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kavinduUdhara/fbdocs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching %s\n", c.URL)

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbdocs.ErrorMessage(err))
		return err
	}

	res, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Page title: %s\n", res.Title)

	available := res.AvailableLanguages()
	if len(available) > 0 {
		fmt.Fprintf(deps.Stdout, "Detected languages: %s\n", strings.Join(available, ", "))
	}

	sel, err := c.resolveSelection(deps, available)
	if err != nil {
		return err
	}

	blocks := fbdocs.FilterBlocks(res.Blocks, sel)
	if len(sel) > 0 {
		fmt.Fprintf(deps.Stdout, "Filtering for: %s\n", strings.Join(sel.List(), ", "))
	}
	if len(blocks) == 0 {
		err := fbdocs.Errorf(fbdocs.ENOTFOUND, "no content found at %s", c.URL)
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbdocs.ErrorMessage(err))
		return err
	}

	var body strings.Builder
	for _, block := range blocks {
		body.WriteString(block.HTML)
	}

	markdown, err := deps.Converter.Convert(body.String())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbdocs.ErrorMessage(err))
		return err
	}

	doc := &fbdocs.Document{
		ID:        uuid.New().String(),
		SourceURL: c.URL,
		Title:     res.Title,
		Languages: sel.List(),
		Content:   markdown,
		FetchedAt: time.Now(),
	}

	if err := deps.Writer.CreateDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving: %s\n", fbdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documentation saved to %s\n", doc.Path)

	return nil
}

// resolveSelection builds the language selection from flags or the
// interactive picker. Unknown aliases are kept (they simply match nothing)
// with a warning when they were not detected on the page.
func (c *ExtractCmd) resolveSelection(deps *Dependencies, available []string) (fbdocs.Selection, error) {
	if c.Interactive {
		if len(available) == 0 {
			fmt.Fprintln(deps.Stdout, "No specific programming languages detected in this documentation.")
			return fbdocs.Selection{}, nil
		}
		langs, err := deps.Picker.Pick(deps.Ctx, available)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbdocs.ErrorMessage(err))
			return nil, err
		}
		return fbdocs.NewSelection(langs...), nil
	}

	sel := fbdocs.NewSelection(c.Languages...)
	if len(sel) > 0 {
		detected := fbdocs.NewSelection(available...)
		for _, lang := range sel.List() {
			if !detected.Contains(lang) {
				fmt.Fprintf(deps.Stderr, "warning: language %q not detected on this page\n", lang)
			}
		}
	}
	return sel, nil
}
