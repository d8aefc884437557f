// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/hoop-picks/cliparse"
	"github.com/danielhkuo/hoop-picks/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. One connection only: each in-memory connection would
// otherwise get its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3320,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminKeySalt:  "test-admin-salt",
		SweepInterval: time.Minute,
	}
}

// CreateTestFixture inserts a scheduled fixture and returns its ID
func CreateTestFixture(t *testing.T, conn *sql.DB, externalID string, startsAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO fixture (id, external_id, home_team, away_team, home_tricode, away_tricode, starts_at, status)
		VALUES ($1, $2, 'Home City Homers', 'Away City Aways', 'HOM', 'AWY', $3, 'scheduled')
	`, id, externalID, startsAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test fixture: %v", err)
	}

	return id
}

// CreateTestParticipant inserts a participant and returns its ID
func CreateTestParticipant(t *testing.T, conn *sql.DB, externalID, displayName string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO participant (id, external_id, display_name)
		VALUES ($1, $2, $3)
	`, id, externalID, displayName)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return id
}

// OpenTestChannel links a broadcast message to a fixture and returns
// the channel ID
func OpenTestChannel(t *testing.T, conn *sql.DB, fixtureID, messageID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO prediction_channel (id, fixture_id, message_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, fixtureID, messageID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to open test channel: %v", err)
	}

	return id
}

// CastTestVote inserts a vote row directly (no counter bump) and
// returns the vote ID
func CastTestVote(t *testing.T, conn *sql.DB, participantID, channelID, choice string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, participant_id, channel_id, choice, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, participantID, channelID, choice, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}

	return id
}
