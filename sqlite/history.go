package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/symcheck"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ symcheck.HistoryService = (*HistoryService)(nil)

// HistoryService implements symcheck.HistoryService using SQLite.
type HistoryService struct {
	db    *DB
	limit int
}

// NewHistoryService creates a new HistoryService retaining
// symcheck.MaxRecentChecks entries.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, limit: symcheck.MaxRecentChecks}
}

// RecordCheck stores a check and trims older entries in the same transaction.
func (s *HistoryService) RecordCheck(ctx context.Context, check *symcheck.Check) error {
	if err := check.Validate(); err != nil {
		return err
	}

	symptoms, err := json.Marshal(check.Symptoms)
	if err != nil {
		return fmt.Errorf("failed to encode symptoms: %w", err)
	}

	id := uuid.New().String()
	createdAt := check.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO checks (id, symptoms, custom_symptoms, conditions_count, source, reference_checksum, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, string(symptoms), check.CustomSymptoms, check.ConditionsCount,
		string(check.Source), check.ReferenceChecksum, formatTime(createdAt)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM checks
		WHERE rowid NOT IN (
			SELECT rowid FROM checks ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`, s.limit); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	check.ID = id
	check.CreatedAt = createdAt
	return nil
}

// RecentChecks returns stored checks, newest first.
func (s *HistoryService) RecentChecks(ctx context.Context) ([]*symcheck.Check, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, symptoms, custom_symptoms, conditions_count, source, reference_checksum, created_at
		FROM checks
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*symcheck.Check
	for rows.Next() {
		var check symcheck.Check
		var symptoms, source, createdAt string

		if err := rows.Scan(&check.ID, &symptoms, &check.CustomSymptoms, &check.ConditionsCount,
			&source, &check.ReferenceChecksum, &createdAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(symptoms), &check.Symptoms); err != nil {
			return nil, fmt.Errorf("failed to decode symptoms: %w", err)
		}
		check.Source = symcheck.Source(source)
		if check.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		checks = append(checks, &check)
	}

	return checks, rows.Err()
}

// ClearChecks removes all stored checks.
func (s *HistoryService) ClearChecks(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM checks")
	return err
}
