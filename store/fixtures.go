// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/hoop-picks/models"
)

type FixtureStore struct {
	db *sql.DB
}

func NewFixtureStore(db *sql.DB) *FixtureStore {
	return &FixtureStore{db: db}
}

// FixtureUpsert carries the scheduling metadata consumed from the feed.
type FixtureUpsert struct {
	ExternalID  string
	HomeTeam    string
	AwayTeam    string
	HomeTricode string
	AwayTricode string
	StartsAt    time.Time
	Broadcast   *string
}

// Upsert inserts an unseen fixture and returns the internal key. For a
// known fixture it refreshes scheduling metadata (teams, start time,
// broadcast) only while the fixture is still 'scheduled'; status,
// outcome and the close flag are never touched, so re-ingesting a feed
// glitch that reports a completed game as 'scheduled' is a no-op.
func (s *FixtureStore) Upsert(ctx context.Context, f FixtureUpsert) (string, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fixture
			(id, external_id, home_team, away_team, home_tricode, away_tricode,
			 starts_at, status, broadcast)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'scheduled', $8)
		ON CONFLICT (external_id) DO UPDATE SET
			home_team    = excluded.home_team,
			away_team    = excluded.away_team,
			home_tricode = excluded.home_tricode,
			away_tricode = excluded.away_tricode,
			starts_at    = excluded.starts_at,
			broadcast    = excluded.broadcast
		WHERE fixture.status = 'scheduled'
	`, uuid.NewString(), f.ExternalID, f.HomeTeam, f.AwayTeam,
		f.HomeTricode, f.AwayTricode, f.StartsAt.UTC(), f.Broadcast)
	if err != nil {
		return "", fmt.Errorf("store.Upsert: %s: %w", f.ExternalID, err)
	}

	var id string
	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM fixture WHERE external_id = $1`, f.ExternalID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("store.Upsert: read back %s: %w", f.ExternalID, err)
	}
	return id, nil
}

// RecordOutcome settles a fixture: computes the outcome from the final
// score (ties do not occur in this domain) and flips status to
// 'completed'. Calling it again on a completed fixture is a no-op; the
// original outcome is never recomputed or overwritten.
func (s *FixtureStore) RecordOutcome(ctx context.Context, externalID string, homeScore, awayScore int) error {
	outcome := models.OutcomeAwayWins
	if homeScore > awayScore {
		outcome = models.OutcomeHomeWins
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE fixture
		SET status = 'completed', outcome = $1, home_score = $2, away_score = $3
		WHERE external_id = $4 AND status = 'scheduled'
	`, outcome, homeScore, awayScore, externalID)
	if err != nil {
		return fmt.Errorf("store.RecordOutcome: %s: %w", externalID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store.RecordOutcome: rows affected: %w", err)
	}
	if affected == 0 {
		// Either unknown or already completed. Only the former is an error.
		return s.ensureExists(ctx, externalID)
	}
	return nil
}

// MarkPredictionClosed sets the close flag. Idempotent.
func (s *FixtureStore) MarkPredictionClosed(ctx context.Context, externalID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE fixture SET prediction_closed = TRUE WHERE external_id = $1`, externalID)
	if err != nil {
		return fmt.Errorf("store.MarkPredictionClosed: %s: %w", externalID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store.MarkPredictionClosed: rows affected: %w", err)
	}
	if affected == 0 {
		return s.ensureExists(ctx, externalID)
	}
	return nil
}

// ByExternalID looks up one fixture by the feed's identifier.
func (s *FixtureStore) ByExternalID(ctx context.Context, externalID string) (models.Fixture, error) {
	return s.one(ctx, `WHERE external_id = $1`, externalID)
}

// ByID looks up one fixture by the internal key.
func (s *FixtureStore) ByID(ctx context.Context, id string) (models.Fixture, error) {
	return s.one(ctx, `WHERE id = $1`, id)
}

// InWindow returns fixtures whose start falls in the half-open interval
// [startInclusive, endExclusive), ordered by start time.
func (s *FixtureStore) InWindow(ctx context.Context, startInclusive, endExclusive time.Time) ([]models.Fixture, error) {
	return s.list(ctx, `WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at`,
		startInclusive.UTC(), endExclusive.UTC())
}

// OpenScheduled returns fixtures still 'scheduled' whose close flag is
// unset - the candidates for the closing sweep.
func (s *FixtureStore) OpenScheduled(ctx context.Context) ([]models.Fixture, error) {
	return s.list(ctx, `WHERE status = 'scheduled' AND prediction_closed = FALSE ORDER BY starts_at`)
}

const fixtureColumns = `id, external_id, home_team, away_team, home_tricode, away_tricode,
	starts_at, status, outcome, home_score, away_score, prediction_closed, broadcast`

func (s *FixtureStore) one(ctx context.Context, where string, args ...any) (models.Fixture, error) {
	var f models.Fixture
	err := s.db.QueryRowContext(ctx,
		`SELECT `+fixtureColumns+` FROM fixture `+where, args...,
	).Scan(&f.ID, &f.ExternalID, &f.HomeTeam, &f.AwayTeam, &f.HomeTricode, &f.AwayTricode,
		&f.StartsAt, &f.Status, &f.Outcome, &f.HomeScore, &f.AwayScore, &f.PredictionClosed, &f.Broadcast)
	if err == sql.ErrNoRows {
		return models.Fixture{}, models.ErrNotFound
	}
	if err != nil {
		return models.Fixture{}, fmt.Errorf("store: query fixture: %w", err)
	}
	return f, nil
}

func (s *FixtureStore) list(ctx context.Context, where string, args ...any) ([]models.Fixture, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+fixtureColumns+` FROM fixture `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []models.Fixture
	for rows.Next() {
		var f models.Fixture
		if err := rows.Scan(&f.ID, &f.ExternalID, &f.HomeTeam, &f.AwayTeam,
			&f.HomeTricode, &f.AwayTricode, &f.StartsAt, &f.Status, &f.Outcome,
			&f.HomeScore, &f.AwayScore, &f.PredictionClosed, &f.Broadcast); err != nil {
			return nil, fmt.Errorf("store: scan fixture: %w", err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, rows.Err()
}

func (s *FixtureStore) ensureExists(ctx context.Context, externalID string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM fixture WHERE external_id = $1)`, externalID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("store: check fixture exists: %w", err)
	}
	if !exists {
		return models.ErrNotFound
	}
	return nil
}
