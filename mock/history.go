package mock

import (
	"context"

	"github.com/fwojciec/symcheck"
)

var _ symcheck.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of symcheck.HistoryService.
type HistoryService struct {
	RecordCheckFn  func(ctx context.Context, check *symcheck.Check) error
	RecentChecksFn func(ctx context.Context) ([]*symcheck.Check, error)
	ClearChecksFn  func(ctx context.Context) error
}

func (s *HistoryService) RecordCheck(ctx context.Context, check *symcheck.Check) error {
	return s.RecordCheckFn(ctx, check)
}

func (s *HistoryService) RecentChecks(ctx context.Context) ([]*symcheck.Check, error) {
	return s.RecentChecksFn(ctx)
}

func (s *HistoryService) ClearChecks(ctx context.Context) error {
	return s.ClearChecksFn(ctx)
}
