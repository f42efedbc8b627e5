// Package checker runs symptom checks against the reference data, a remote
// analyzer and the fixed fallback table.
package checker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/symcheck"
)

// DefaultTimeout bounds a single remote analysis call.
const DefaultTimeout = 30 * time.Second

// Checker answers symptom check requests.
//
// Reference data is consulted first. When it yields no matches the remote
// analyzer is asked, and when that fails the fixed fallback table is scored.
// Only reference and remote results are recorded in history.
type Checker struct {
	Reference *symcheck.Reference
	Remote    symcheck.RemoteAnalyzer
	History   symcheck.HistoryService
	Logger    *slog.Logger

	// Timeout bounds the remote call. Zero means DefaultTimeout.
	Timeout time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Check analyzes a request.
// Returns EINVALID if the request carries no symptoms.
func (c *Checker) Check(ctx context.Context, req *symcheck.Request) (*symcheck.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if c.Reference.Ready() {
		tokens := symcheck.CollectTokens(req, c.Reference.Vocabulary())
		if matches := symcheck.Score(tokens, c.Reference); len(matches) > 0 {
			a := c.newAnalysis(req, symcheck.SourceDataset)
			a.Tokens = tokens.Sorted()
			a.Conditions = matches
			a.ReferenceChecksum = c.Reference.ChecksumHex()
			c.record(ctx, a)
			return a, nil
		}
		c.logger().Debug("no reference matches", "tokens", tokens.Len())
	}

	if c.Remote != nil {
		if a, ok := c.remote(ctx, req); ok {
			c.record(ctx, a)
			return a, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := c.newAnalysis(req, symcheck.SourceFallback)
	a.Conditions = symcheck.ScoreFallback(req.Symptoms)
	return a, nil
}

func (c *Checker) remote(ctx context.Context, req *symcheck.Request) (*symcheck.Analysis, bool) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch r := c.Remote.Analyze(ctx, req).(type) {
	case symcheck.RemoteSuccess:
		a := c.newAnalysis(req, symcheck.SourceRemote)
		a.Text = r.Analysis
		if r.Disclaimer != "" {
			a.Disclaimer = r.Disclaimer
		}
		return a, true
	case symcheck.RemoteFailure:
		c.logger().Warn("remote analysis unavailable, using fallback", "reason", r.Reason)
	}
	return nil, false
}

func (c *Checker) newAnalysis(req *symcheck.Request, source symcheck.Source) *symcheck.Analysis {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	symptoms := make([]string, len(req.Symptoms))
	copy(symptoms, req.Symptoms)
	return &symcheck.Analysis{
		Request: symcheck.Request{
			Symptoms:       symptoms,
			CustomSymptoms: req.CustomSymptoms,
		},
		Source:     source,
		Conditions: []symcheck.Match{},
		Disclaimer: symcheck.Disclaimer,
		CreatedAt:  now().UTC(),
	}
}

// record stores a check in history. Failures are logged, not returned.
func (c *Checker) record(ctx context.Context, a *symcheck.Analysis) {
	if c.History == nil {
		return
	}
	if err := c.History.RecordCheck(ctx, symcheck.NewCheck(a)); err != nil {
		c.logger().Warn("failed to record check", "source", a.Source, "err", err)
	}
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
