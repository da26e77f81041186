package fbdocs

import "context"

// LanguagePicker lets the user choose languages from those detected on the
// page. Implementations are interactive; cancellation returns an error with
// code ECANCELED and must abort the run without writing output.
type LanguagePicker interface {
	// Pick presents the available canonical language identifiers and
	// returns the chosen subset. An empty (confirmed) choice means all
	// available languages.
	Pick(ctx context.Context, available []string) ([]string, error)
}
