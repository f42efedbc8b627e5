package symcheck

import (
	"context"
	"time"
)

// MaxRecentChecks is the number of checks retained in history.
const MaxRecentChecks = 3

// Check is a history entry summarizing a finished analysis.
type Check struct {
	ID              string    `json:"id"`
	Symptoms        []string  `json:"symptoms"`
	CustomSymptoms  string    `json:"customSymptoms"`
	ConditionsCount int       `json:"conditionsCount"`
	Source          Source    `json:"source"`
	CreatedAt       time.Time `json:"createdAt"`

	// ReferenceChecksum identifies the reference data of a dataset check.
	ReferenceChecksum string `json:"referenceChecksum,omitempty"`
}

// NewCheck summarizes an analysis as a history entry.
func NewCheck(a *Analysis) *Check {
	symptoms := make([]string, len(a.Request.Symptoms))
	copy(symptoms, a.Request.Symptoms)
	return &Check{
		Symptoms:        symptoms,
		CustomSymptoms:  a.Request.CustomSymptoms,
		ConditionsCount: len(a.Conditions),
		Source:          a.Source,
		CreatedAt:       a.CreatedAt,

		ReferenceChecksum: a.ReferenceChecksum,
	}
}

// Validate returns an error if the check contains invalid fields.
func (c *Check) Validate() error {
	if len(c.Symptoms) == 0 && c.CustomSymptoms == "" {
		return Errorf(EINVALID, "check symptoms required")
	}
	switch c.Source {
	case SourceRemote, SourceDataset, SourceFallback:
	default:
		return Errorf(EINVALID, "check source %q invalid", c.Source)
	}
	return nil
}

// HistoryService stores the most recent checks.
type HistoryService interface {
	// RecordCheck stores a check, assigning its ID, and discards entries
	// beyond MaxRecentChecks.
	RecordCheck(ctx context.Context, check *Check) error

	// RecentChecks returns stored checks, newest first.
	RecentChecks(ctx context.Context) ([]*Check, error)

	// ClearChecks removes all stored checks.
	ClearChecks(ctx context.Context) error
}
