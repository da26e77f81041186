package slog

import (
	"log/slog"
	"time"

	"github.com/kavinduUdhara/fbdocs"
)

// Ensure LoggingExtractor implements fbdocs.Extractor.
var _ fbdocs.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for content
// location and language detection.
type LoggingExtractor struct {
	next   fbdocs.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next fbdocs.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was located.
func (e *LoggingExtractor) Extract(html string) (*fbdocs.ExtractResult, error) {
	begin := time.Now()
	res, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extraction failed",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("extracted content",
		"title", res.Title,
		"selector", res.Selector,
		"blocks", len(res.Blocks),
		"languages", res.AvailableLanguages(),
		"duration", time.Since(begin),
	)
	return res, nil
}
