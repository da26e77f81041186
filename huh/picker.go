// Package huh provides a terminal-based implementation of
// fbdocs.LanguagePicker using an arrow-key multi-select menu.
package huh

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/kavinduUdhara/fbdocs"
)

// Ensure Picker implements fbdocs.LanguagePicker at compile time.
var _ fbdocs.LanguagePicker = (*Picker)(nil)

// Picker prompts the user to choose languages from those detected on the
// page.
type Picker struct{}

// NewPicker creates a new Picker.
func NewPicker() *Picker {
	return &Picker{}
}

// Pick presents the available languages as a multi-select menu. Confirming
// with nothing selected means all languages. Aborting the prompt returns an
// ECANCELED error.
func (p *Picker) Pick(ctx context.Context, available []string) ([]string, error) {
	if len(available) == 0 {
		return nil, nil
	}

	var selected []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Languages detected in this documentation").
			Description("Select the languages to keep; confirm with none selected to keep all.").
			Options(huh.NewOptions(available...)...).
			Value(&selected),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fbdocs.Errorf(fbdocs.ECANCELED, "language selection canceled")
		}
		return nil, err
	}

	if len(selected) == 0 {
		return available, nil
	}
	return selected, nil
}
