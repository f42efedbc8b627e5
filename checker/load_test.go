package checker_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/symcheck"
	"github.com/fwojciec/symcheck/checker"
	"github.com/fwojciec/symcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource serves fixed tables and counts fetches per table.
type countingSource struct {
	mu     sync.Mutex
	calls  map[string]int
	source *mock.ReferenceSource
}

func newCountingSource(fn func(name string, call int) (string, error)) *countingSource {
	s := &countingSource{calls: make(map[string]int)}
	s.source = &mock.ReferenceSource{
		FetchFn: func(_ context.Context, name string) (string, error) {
			s.mu.Lock()
			s.calls[name]++
			call := s.calls[name]
			s.mu.Unlock()
			return fn(name, call)
		},
	}
	return s
}

func (s *countingSource) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func TestLoadReference(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{}

	t.Run("loads both tables", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(name string, _ int) (string, error) {
			switch name {
			case symcheck.SymptomTableName:
				return symptomTable, nil
			case symcheck.PrecautionTableName:
				return precautionTable, nil
			}
			return "", symcheck.Errorf(symcheck.ENOTFOUND, "table %q not found", name)
		})

		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{RetryDelays: noDelays})

		require.NoError(t, err)
		assert.True(t, ref.Ready())
		assert.Equal(t, []string{"Fungal infection", "Influenza"}, ref.Diseases())
		assert.Equal(t, []string{"rest", "drink fluids"}, ref.Precautions("Influenza"))
		assert.Equal(t, symcheck.NewReference(symptomTable, precautionTable).Checksum, ref.Checksum)
	})

	t.Run("logs reference checksum", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(name string, _ int) (string, error) {
			if name == symcheck.SymptomTableName {
				return symptomTable, nil
			}
			return precautionTable, nil
		})

		var buf bytes.Buffer
		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{
			RetryDelays: noDelays,
			Logger:      slog.New(slog.NewTextHandler(&buf, nil)),
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "reference loaded")
		assert.Contains(t, output, "diseases=2")
		assert.Contains(t, output, "checksum="+fmt.Sprintf("%016x", ref.Checksum))
	})

	t.Run("uses custom table names", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(name string, _ int) (string, error) {
			if name == "symptoms.csv" {
				return symptomTable, nil
			}
			return "", symcheck.Errorf(symcheck.ENOTFOUND, "table %q not found", name)
		})

		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{
			SymptomTable:    "symptoms.csv",
			PrecautionTable: "precautions.csv",
			RetryDelays:     noDelays,
		})

		require.NoError(t, err)
		assert.True(t, ref.Ready())
		assert.Nil(t, ref.Precautions("Influenza"))
		assert.Equal(t, 1, src.count("precautions.csv"))
	})

	t.Run("missing symptom table leaves reference not ready", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(name string, _ int) (string, error) {
			if name == symcheck.PrecautionTableName {
				return precautionTable, nil
			}
			return "", symcheck.Errorf(symcheck.ENOTFOUND, "table %q not found", name)
		})

		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond},
		})

		require.NoError(t, err)
		assert.False(t, ref.Ready())
		assert.Equal(t, 1, src.count(symcheck.SymptomTableName), "missing tables are not retried")
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(name string, call int) (string, error) {
			if call < 3 {
				return "", errors.New("connection reset")
			}
			if name == symcheck.SymptomTableName {
				return symptomTable, nil
			}
			return precautionTable, nil
		})

		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		})

		require.NoError(t, err)
		assert.True(t, ref.Ready())
		assert.Equal(t, 3, src.count(symcheck.SymptomTableName))
		assert.Equal(t, 3, src.count(symcheck.PrecautionTableName))
	})

	t.Run("gives up after last retry", func(t *testing.T) {
		t.Parallel()

		src := newCountingSource(func(string, int) (string, error) {
			return "", errors.New("connection reset")
		})

		ref, err := checker.LoadReference(context.Background(), src.source, checker.LoadOptions{
			RetryDelays: []time.Duration{time.Millisecond},
		})

		require.NoError(t, err)
		assert.False(t, ref.Ready())
		assert.Equal(t, 2, src.count(symcheck.SymptomTableName))
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := newCountingSource(func(string, int) (string, error) {
			return "", context.Canceled
		})

		_, err := checker.LoadReference(ctx, src.source, checker.LoadOptions{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
