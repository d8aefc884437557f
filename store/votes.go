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

type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// CastVote records a participant's choice for a channel and bumps the
// participant's participation counter in the same transaction.
//
// Rejections, in order of precedence:
//   - ErrNotFound: unknown channel or participant
//   - ErrChannelClosed: the fixture's close flag is set
//   - ErrAlreadyVoted: a vote already exists for the pair (the unique
//     constraint resolves concurrent attempts; the first insert wins)
func (l *VoteLedger) CastVote(ctx context.Context, participantID, channelID, choice string, now time.Time) (string, error) {
	if choice != models.ChoiceHome && choice != models.ChoiceAway {
		return "", fmt.Errorf("store.CastVote: invalid choice %q", choice)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("store.CastVote: begin tx: %w", err)
	}
	defer tx.Rollback()

	var closed bool
	err = tx.QueryRowContext(ctx, `
		SELECT f.prediction_closed
		FROM prediction_channel c
		JOIN fixture f ON f.id = c.fixture_id
		WHERE c.id = $1
	`, channelID).Scan(&closed)
	if err == sql.ErrNoRows {
		return "", models.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store.CastVote: query channel: %w", err)
	}
	if closed {
		return "", models.ErrChannelClosed
	}

	var participantExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM participant WHERE id = $1)`, participantID,
	).Scan(&participantExists)
	if err != nil {
		return "", fmt.Errorf("store.CastVote: check participant: %w", err)
	}
	if !participantExists {
		return "", models.ErrNotFound
	}

	voteID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (id, participant_id, channel_id, choice, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, participantID, channelID, choice, now.UTC())
	if isUniqueViolation(err) {
		return "", models.ErrAlreadyVoted
	}
	if err != nil {
		return "", fmt.Errorf("store.CastVote: insert vote: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE participant
		SET participation_count = participation_count + 1
		WHERE id = $1
	`, participantID)
	if err != nil {
		return "", fmt.Errorf("store.CastVote: bump participation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("store.CastVote: commit: %w", err)
	}
	return voteID, nil
}

// VotesForChannel returns every vote cast on a channel. Used by the
// scoring aggregator.
func (l *VoteLedger) VotesForChannel(ctx context.Context, channelID string) ([]models.Vote, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, participant_id, channel_id, choice, cast_at
		FROM vote
		WHERE channel_id = $1
		ORDER BY cast_at
	`, channelID)
	if err != nil {
		return nil, fmt.Errorf("store.VotesForChannel: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.ParticipantID, &v.ChannelID, &v.Choice, &v.CastAt); err != nil {
			return nil, fmt.Errorf("store.VotesForChannel: scan: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// RecountParticipation recomputes every participation counter from the
// vote ledger. The ledger is the source of truth; this is the recovery
// path if a crash ever left a counter out of step with the vote rows.
func (l *VoteLedger) RecountParticipation(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `
		UPDATE participant
		SET participation_count = (
			SELECT COUNT(*) FROM vote WHERE vote.participant_id = participant.id
		)
	`)
	if err != nil {
		return fmt.Errorf("store.RecountParticipation: %w", err)
	}
	return nil
}
