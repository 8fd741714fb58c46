package mock

import (
	"context"

	"github.com/fwojciec/locmt"
)

var _ locmt.StatusIndicator = (*StatusIndicator)(nil)

// StatusIndicator is a mock implementation of locmt.StatusIndicator.
type StatusIndicator struct {
	RunFn func(ctx context.Context, label string) error
}

func (s *StatusIndicator) Run(ctx context.Context, label string) error {
	return s.RunFn(ctx, label)
}
