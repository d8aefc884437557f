// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/hoop-picks/models"
)

type ParticipantStore struct {
	db *sql.DB
}

func NewParticipantStore(db *sql.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

// Register creates a participant on first sight and returns the
// internal key. Re-registration is a no-op that keeps the original row
// and counters.
func (s *ParticipantStore) Register(ctx context.Context, externalID, displayName string) (string, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO participant (id, external_id, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (external_id) DO NOTHING
	`, uuid.NewString(), externalID, displayName)
	if err != nil {
		return "", fmt.Errorf("store.Register: %s: %w", externalID, err)
	}

	var id string
	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM participant WHERE external_id = $1`, externalID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("store.Register: read back %s: %w", externalID, err)
	}
	return id, nil
}

// ByExternalID looks up a participant by their messaging account ID.
func (s *ParticipantStore) ByExternalID(ctx context.Context, externalID string) (models.Participant, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, external_id, display_name, correct_count, participation_count
		FROM participant
		WHERE external_id = $1
	`, externalID).Scan(&p.ID, &p.ExternalID, &p.DisplayName, &p.CorrectCount, &p.ParticipationCount)
	if err == sql.ErrNoRows {
		return models.Participant{}, models.ErrNotFound
	}
	if err != nil {
		return models.Participant{}, fmt.Errorf("store.ByExternalID: %w", err)
	}
	return p, nil
}

// Standings returns all participants ordered by correct predictions,
// then participation, then name for a stable listing.
func (s *ParticipantStore) Standings(ctx context.Context) ([]models.Standing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT display_name, correct_count, participation_count
		FROM participant
		ORDER BY correct_count DESC, participation_count DESC, display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("store.Standings: %w", err)
	}
	defer rows.Close()

	standings := []models.Standing{}
	for rows.Next() {
		var st models.Standing
		if err := rows.Scan(&st.DisplayName, &st.CorrectCount, &st.ParticipationCount); err != nil {
			return nil, fmt.Errorf("store.Standings: scan: %w", err)
		}
		standings = append(standings, st)
	}
	return standings, rows.Err()
}
