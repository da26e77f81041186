package mock

import (
	"context"

	"github.com/kavinduUdhara/fbdocs"
)

var _ fbdocs.LanguagePicker = (*LanguagePicker)(nil)

// LanguagePicker is a mock implementation of fbdocs.LanguagePicker.
type LanguagePicker struct {
	PickFn func(ctx context.Context, available []string) ([]string, error)
}

func (p *LanguagePicker) Pick(ctx context.Context, available []string) ([]string, error) {
	return p.PickFn(ctx, available)
}
