package mock

import (
	"context"

	"github.com/fwojciec/symcheck"
)

var _ symcheck.ReferenceSource = (*ReferenceSource)(nil)

// ReferenceSource is a mock implementation of symcheck.ReferenceSource.
type ReferenceSource struct {
	FetchFn func(ctx context.Context, name string) (string, error)
}

func (s *ReferenceSource) Fetch(ctx context.Context, name string) (string, error) {
	return s.FetchFn(ctx, name)
}
