package mock

import (
	"context"

	"github.com/fwojciec/locmt"
)

var _ locmt.Describer = (*Describer)(nil)

// Describer is a mock implementation of locmt.Describer.
type Describer struct {
	SearchFn   func(ctx context.Context, page locmt.Page, title string) ([]locmt.SearchResult, error)
	DescribeFn func(ctx context.Context, page locmt.Page, result locmt.SearchResult) (string, error)
}

func (d *Describer) Search(ctx context.Context, page locmt.Page, title string) ([]locmt.SearchResult, error) {
	return d.SearchFn(ctx, page, title)
}

func (d *Describer) Describe(ctx context.Context, page locmt.Page, result locmt.SearchResult) (string, error) {
	return d.DescribeFn(ctx, page, result)
}

var _ locmt.Chooser = (*Chooser)(nil)

// Chooser is a mock implementation of locmt.Chooser.
type Chooser struct {
	ChooseFn func(ctx context.Context, candidates []locmt.SearchResult) (int, error)
}

func (c *Chooser) Choose(ctx context.Context, candidates []locmt.SearchResult) (int, error) {
	return c.ChooseFn(ctx, candidates)
}
