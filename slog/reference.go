package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
)

// Ensure LoggingReferenceSource implements symcheck.ReferenceSource.
var _ symcheck.ReferenceSource = (*LoggingReferenceSource)(nil)

// LoggingReferenceSource wraps a ReferenceSource with debug logging.
type LoggingReferenceSource struct {
	next   symcheck.ReferenceSource
	logger *slog.Logger
}

// NewLoggingReferenceSource creates a new LoggingReferenceSource.
func NewLoggingReferenceSource(next symcheck.ReferenceSource, logger *slog.Logger) *LoggingReferenceSource {
	return &LoggingReferenceSource{next: next, logger: logger}
}

// Fetch delegates to the wrapped source and logs the operation.
func (s *LoggingReferenceSource) Fetch(ctx context.Context, name string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("reference fetch",
			"table", name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx, name)
}
