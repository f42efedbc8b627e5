package checker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
	"golang.org/x/sync/errgroup"
)

// LoadOptions configures LoadReference.
type LoadOptions struct {
	// SymptomTable and PrecautionTable name the tables to fetch.
	// Empty names use the symcheck defaults.
	SymptomTable    string
	PrecautionTable string

	// RetryDelays are the waits between fetch attempts.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// LoadReference fetches both reference tables concurrently and builds a
// Reference. A table that cannot be fetched is logged and treated as empty,
// so the result may not be ready. Only context cancellation is returned as
// an error.
func LoadReference(ctx context.Context, src symcheck.ReferenceSource, opts LoadOptions) (*symcheck.Reference, error) {
	if opts.SymptomTable == "" {
		opts.SymptomTable = symcheck.SymptomTableName
	}
	if opts.PrecautionTable == "" {
		opts.PrecautionTable = symcheck.PrecautionTableName
	}
	if opts.RetryDelays == nil {
		opts.RetryDelays = DefaultRetryDelays()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var symptomText, precautionText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		symptomText = loadTable(gctx, src, opts.SymptomTable, opts.RetryDelays, logger)
		return nil
	})
	g.Go(func() error {
		precautionText = loadTable(gctx, src, opts.PrecautionTable, opts.RetryDelays, logger)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref := symcheck.NewReference(symptomText, precautionText)
	logger.Info("reference loaded",
		"diseases", len(ref.Diseases()),
		"symptoms", ref.Vocabulary().Len(),
		"ready", ref.Ready(),
		"checksum", ref.ChecksumHex(),
	)
	return ref, nil
}

func loadTable(ctx context.Context, src symcheck.ReferenceSource, name string, delays []time.Duration, logger *slog.Logger) string {
	text, err := fetchWithRetry(ctx, src, name, delays, logger)
	if err != nil {
		logger.Warn("reference table unavailable", "table", name, "err", err)
		return ""
	}
	if text == "" {
		logger.Warn("reference table empty", "table", name)
	}
	return text
}
