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

type ChannelRegistry struct {
	db *sql.DB
}

func NewChannelRegistry(db *sql.DB) *ChannelRegistry {
	return &ChannelRegistry{db: db}
}

// Open associates a broadcast message with a fixture. A fixture has at
// most one channel; a second attempt returns ErrAlreadyOpen and leaves
// the first association intact. Closing is a fixture flag, not registry
// state, so the two can never disagree.
func (r *ChannelRegistry) Open(ctx context.Context, fixtureID, messageID string, now time.Time) (models.Channel, error) {
	ch := models.Channel{
		ID:        uuid.NewString(),
		FixtureID: fixtureID,
		MessageID: messageID,
		CreatedAt: now.UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prediction_channel (id, fixture_id, message_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, ch.ID, ch.FixtureID, ch.MessageID, ch.CreatedAt)
	if isUniqueViolation(err) {
		return models.Channel{}, models.ErrAlreadyOpen
	}
	if err != nil {
		return models.Channel{}, fmt.Errorf("store.Open: fixture %s: %w", fixtureID, err)
	}
	return ch, nil
}

// ByMessageID resolves the channel behind an inbound vote event.
func (r *ChannelRegistry) ByMessageID(ctx context.Context, messageID string) (models.Channel, error) {
	return r.one(ctx, `WHERE message_id = $1`, messageID)
}

// ByFixture returns the channel opened for a fixture, if any.
func (r *ChannelRegistry) ByFixture(ctx context.Context, fixtureID string) (models.Channel, error) {
	return r.one(ctx, `WHERE fixture_id = $1`, fixtureID)
}

func (r *ChannelRegistry) one(ctx context.Context, where string, args ...any) (models.Channel, error) {
	var ch models.Channel
	err := r.db.QueryRowContext(ctx,
		`SELECT id, fixture_id, message_id, created_at FROM prediction_channel `+where, args...,
	).Scan(&ch.ID, &ch.FixtureID, &ch.MessageID, &ch.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Channel{}, models.ErrNotFound
	}
	if err != nil {
		return models.Channel{}, fmt.Errorf("store: query channel: %w", err)
	}
	return ch, nil
}
