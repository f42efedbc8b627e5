package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
)

// DefaultRetryDelays returns the backoff delays for table fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry fetches a table, retrying after each delay in turn.
// Missing tables and invalid names are not retried.
func fetchWithRetry(ctx context.Context, src symcheck.ReferenceSource, name string, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := src.Fetch(ctx, name)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		logger.Debug("retry table fetch", "table", name, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch symcheck.ErrorCode(err) {
	case symcheck.ENOTFOUND, symcheck.EINVALID:
		return false
	}
	return true
}
