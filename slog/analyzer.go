// Package slog provides log/slog decorators for symcheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
)

// Ensure LoggingAnalyzer implements symcheck.RemoteAnalyzer.
var _ symcheck.RemoteAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a RemoteAnalyzer with logging.
type LoggingAnalyzer struct {
	next   symcheck.RemoteAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next symcheck.RemoteAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req *symcheck.Request) symcheck.RemoteResult {
	begin := time.Now()
	res := a.next.Analyze(ctx, req)

	attrs := []any{
		"symptoms", len(req.Symptoms),
		"custom", req.CustomSymptoms != "",
		"duration", time.Since(begin),
	}
	switch r := res.(type) {
	case symcheck.RemoteSuccess:
		a.logger.Info("remote analysis", append(attrs, "result", "success", "chars", len(r.Analysis))...)
	case symcheck.RemoteFailure:
		a.logger.Warn("remote analysis", append(attrs, "result", "failure", "reason", r.Reason)...)
	}
	return res
}
