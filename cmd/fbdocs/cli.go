package main

import (
	"context"
	"io"

	"github.com/kavinduUdhara/fbdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   fbdocs.Fetcher
	Extractor fbdocs.Extractor
	Converter fbdocs.Converter
	Writer    fbdocs.DocumentWriter
	Picker    fbdocs.LanguagePicker
}

// ExtractCmd handles the extract operation: fetch, locate, filter, convert,
// write.
type ExtractCmd struct {
	URL         string
	Languages   []string
	Interactive bool
	OutputDir   string
}
