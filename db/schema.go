// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The unique constraints here are load-bearing: they are the mechanism
// that enforces exactly-once voting and one-channel-per-fixture, not
// merely indexes. All timestamps are stored in UTC; every write path
// normalizes with time.Time.UTC() before binding.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema avoids driver-specific defaults (NOW(), SERIAL, JSONB) so
// the same DDL runs on both SQLite and PostgreSQL. IDs are generated in
// Go; timestamps are always bound explicitly.
const schema = `
-- Fixtures
CREATE TABLE IF NOT EXISTS fixture (
    id TEXT PRIMARY KEY,
    external_id TEXT UNIQUE NOT NULL,
    home_team TEXT NOT NULL,
    away_team TEXT NOT NULL,
    home_tricode TEXT NOT NULL DEFAULT '',
    away_tricode TEXT NOT NULL DEFAULT '',
    starts_at TIMESTAMP NOT NULL,
    status TEXT NOT NULL DEFAULT 'scheduled' CHECK (status IN ('scheduled', 'completed')),
    outcome TEXT CHECK (outcome IN ('home-wins', 'away-wins')),
    home_score INTEGER,
    away_score INTEGER,
    prediction_closed BOOLEAN NOT NULL DEFAULT FALSE,
    broadcast TEXT
);

CREATE INDEX IF NOT EXISTS idx_fixture_starts_at ON fixture(starts_at);
CREATE INDEX IF NOT EXISTS idx_fixture_status ON fixture(status);

-- Prediction channels: at most one per fixture, keyed by the broadcast
-- message that collects the votes
CREATE TABLE IF NOT EXISTS prediction_channel (
    id TEXT PRIMARY KEY,
    fixture_id TEXT UNIQUE NOT NULL REFERENCES fixture(id),
    message_id TEXT UNIQUE NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_channel_message_id ON prediction_channel(message_id);

-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    external_id TEXT UNIQUE NOT NULL,
    display_name TEXT NOT NULL,
    correct_count INTEGER NOT NULL DEFAULT 0,
    participation_count INTEGER NOT NULL DEFAULT 0
);

-- Votes: one per (channel, participant), append-only
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    participant_id TEXT NOT NULL REFERENCES participant(id),
    channel_id TEXT NOT NULL REFERENCES prediction_channel(id),
    choice TEXT NOT NULL CHECK (choice IN ('home', 'away')),
    cast_at TIMESTAMP NOT NULL,
    UNIQUE (channel_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_channel_id ON vote(channel_id);
CREATE INDEX IF NOT EXISTS idx_vote_participant_id ON vote(participant_id);
`
