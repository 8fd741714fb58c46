package mock

import (
	"context"

	"github.com/fwojciec/locmt"
)

var _ locmt.Translator = (*Translator)(nil)

// Translator is a mock implementation of locmt.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, page locmt.Page, text string) (string, error)
}

func (t *Translator) Translate(ctx context.Context, page locmt.Page, text string) (string, error) {
	return t.TranslateFn(ctx, page, text)
}

var _ locmt.SourceLoader = (*SourceLoader)(nil)

// SourceLoader is a mock implementation of locmt.SourceLoader.
type SourceLoader struct {
	LoadFn func(path string) ([]string, error)
}

func (s *SourceLoader) Load(path string) ([]string, error) {
	return s.LoadFn(path)
}
