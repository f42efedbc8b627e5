package mock

import (
	"context"

	"github.com/fwojciec/symcheck"
)

var _ symcheck.RemoteAnalyzer = (*RemoteAnalyzer)(nil)

// RemoteAnalyzer is a mock implementation of symcheck.RemoteAnalyzer.
type RemoteAnalyzer struct {
	AnalyzeFn func(ctx context.Context, req *symcheck.Request) symcheck.RemoteResult
}

func (a *RemoteAnalyzer) Analyze(ctx context.Context, req *symcheck.Request) symcheck.RemoteResult {
	return a.AnalyzeFn(ctx, req)
}
