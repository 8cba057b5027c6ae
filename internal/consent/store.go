// Package consent holds the policy-consent record store and the gate
// state machine that decides whether the consent prompt blocks a page.
package consent

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/keshet-app/keshet/internal/database"
)

// Record is one user's policy-consent acknowledgement, keyed by email.
type Record struct {
	ID             string
	Email          string
	PolicyAccepted bool
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Store reads and writes consent records. The gate only ever reads; the
// consent prompt writes acceptance before signalling the gate.
type Store interface {
	// Find returns the record for email, or nil when none exists.
	Find(ctx context.Context, email string) (*Record, error)
	// RecordAcceptance marks the policy accepted for email, creating the
	// record when absent.
	RecordAcceptance(ctx context.Context, email string) error
}

// SQLiteStore keeps consent records in the local cache database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Find(ctx context.Context, email string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id, email, policy_accepted, accepted_at, created_at, updated_at
	FROM consent_records WHERE email = ?`, email)
	var r Record
	if err := row.Scan(&r.ID, &r.Email, &r.PolicyAccepted, &r.AcceptedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) RecordAcceptance(ctx context.Context, email string) error {
	now := database.Now()
	return database.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO consent_records(id, email, policy_accepted, accepted_at, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
		 policy_accepted=1,
		 accepted_at=excluded.accepted_at,
		 updated_at=excluded.updated_at;
		`, uuid.NewString(), email, now, now, now)
		return err
	})
}
