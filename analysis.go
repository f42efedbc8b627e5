package symcheck

import (
	"context"
	"strings"
	"time"
)

// Disclaimer accompanies every analysis that does not carry its own.
const Disclaimer = "This analysis is for educational purposes only and is not a substitute for professional medical advice. Always consult a healthcare provider for proper diagnosis and treatment."

// Request carries the symptoms submitted for analysis.
type Request struct {
	Symptoms       []string `json:"symptoms"`
	CustomSymptoms string   `json:"custom_symptoms"`
}

// Validate returns an error if the request has no symptoms at all.
func (r *Request) Validate() error {
	for _, s := range r.Symptoms {
		if strings.TrimSpace(s) != "" {
			return nil
		}
	}
	if strings.TrimSpace(r.CustomSymptoms) != "" {
		return nil
	}
	return Errorf(EINVALID, "select at least one symptom or enter custom symptoms")
}

// RemoteResult is the outcome of a remote analysis call: either
// RemoteSuccess or RemoteFailure.
type RemoteResult interface {
	remoteResult()
}

// RemoteSuccess is a completed remote analysis.
type RemoteSuccess struct {
	Analysis   string `json:"analysis"`
	Disclaimer string `json:"disclaimer"`
}

// RemoteFailure reports why a remote analysis could not be used.
type RemoteFailure struct {
	Reason string `json:"reason"`
}

func (RemoteSuccess) remoteResult() {}
func (RemoteFailure) remoteResult() {}

// RemoteAnalyzer analyzes symptoms with a model or service outside the process.
type RemoteAnalyzer interface {
	// Analyze never returns an error; failures are reported as RemoteFailure
	// so the caller can fall back to local analysis.
	Analyze(ctx context.Context, req *Request) RemoteResult
}

// Source identifies which path produced an analysis.
type Source string

// Analysis sources.
const (
	SourceRemote   Source = "remote"
	SourceDataset  Source = "dataset"
	SourceFallback Source = "fallback"
)

// Analysis is the result of checking a request.
type Analysis struct {
	Request    Request   `json:"request"`
	Source     Source    `json:"source"`
	Tokens     []Token   `json:"tokens,omitempty"`
	Conditions []Match   `json:"conditions"`
	Text       string    `json:"analysis,omitempty"`
	Disclaimer string    `json:"disclaimer"`
	CreatedAt  time.Time `json:"createdAt"`

	// ReferenceChecksum identifies the reference data behind a dataset
	// analysis. Empty for other sources.
	ReferenceChecksum string `json:"referenceChecksum,omitempty"`
}
