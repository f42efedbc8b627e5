package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
)

// Ensure LoggingHistoryService implements symcheck.HistoryService.
var _ symcheck.HistoryService = (*LoggingHistoryService)(nil)

// LoggingHistoryService wraps a HistoryService with debug logging.
type LoggingHistoryService struct {
	next   symcheck.HistoryService
	logger *slog.Logger
}

// NewLoggingHistoryService creates a new LoggingHistoryService.
func NewLoggingHistoryService(next symcheck.HistoryService, logger *slog.Logger) *LoggingHistoryService {
	return &LoggingHistoryService{next: next, logger: logger}
}

// RecordCheck delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) RecordCheck(ctx context.Context, check *symcheck.Check) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("record check",
			"id", check.ID,
			"source", check.Source,
			"conditions", check.ConditionsCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordCheck(ctx, check)
}

// RecentChecks delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) RecentChecks(ctx context.Context) (checks []*symcheck.Check, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("recent checks",
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecentChecks(ctx)
}

// ClearChecks delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) ClearChecks(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("clear checks",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearChecks(ctx)
}
