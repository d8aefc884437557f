// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/hoop-picks/models"
)

type Aggregator struct {
	db *sql.DB
}

func NewAggregator(db *sql.DB) *Aggregator {
	return &Aggregator{db: db}
}

// ReconcileFixtureScores folds a completed fixture's votes into
// participant standings. Returns ErrNotReady while the fixture has no
// settled outcome and ErrNotFound for an unknown fixture key.
//
// Correctness is derived, not accumulated: each affected participant's
// correct_count is recomputed from the full vote ledger joined against
// settled outcomes. Running this any number of times for the same
// fixture yields the same counters, and votes cast on a channel that
// was never marked closed (a blowout ending before the close sweep)
// score normally - vote validity was gated at cast time.
func (a *Aggregator) ReconcileFixtureScores(ctx context.Context, fixtureID string) error {
	var status string
	var outcome *string
	err := a.db.QueryRowContext(ctx,
		`SELECT status, outcome FROM fixture WHERE id = $1`, fixtureID,
	).Scan(&status, &outcome)
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("scoring: query fixture: %w", err)
	}
	if status != models.StatusCompleted || outcome == nil {
		return models.ErrNotReady
	}

	// No channel means no votes to score. Not an error: a fixture can
	// complete without a prompt ever having been broadcast.
	var channelID string
	err = a.db.QueryRowContext(ctx,
		`SELECT id FROM prediction_channel WHERE fixture_id = $1`, fixtureID,
	).Scan(&channelID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("scoring: query channel: %w", err)
	}

	_, err = a.db.ExecContext(ctx, `
		UPDATE participant
		SET correct_count = (
			SELECT COUNT(*)
			FROM vote v
			JOIN prediction_channel c ON c.id = v.channel_id
			JOIN fixture f ON f.id = c.fixture_id
			WHERE v.participant_id = participant.id
			  AND f.status = 'completed'
			  AND ((f.outcome = 'home-wins' AND v.choice = 'home')
			    OR (f.outcome = 'away-wins' AND v.choice = 'away'))
		)
		WHERE participant.id IN (
			SELECT participant_id FROM vote WHERE channel_id = $1
		)
	`, channelID)
	if err != nil {
		return fmt.Errorf("scoring: recompute: %w", err)
	}
	return nil
}
