// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL is portable across the two supported drivers
(modernc.org/sqlite and lib/pq): no NOW()/SERIAL/JSONB, IDs generated
in Go, timestamps bound explicitly in UTC.

# Tables

  - fixture: one row per game, keyed by the feed's external ID
  - prediction_channel: the broadcast message collecting votes
  - participant: registered voters with cumulative counters
  - vote: one choice per (channel, participant)

# Relationships

	fixture 1──1 prediction_channel
	prediction_channel 1──* vote
	participant 1──* vote

# Constraints

The unique constraints enforce the core invariants and are not
optional:

  - fixture.external_id: idempotent re-ingestion
  - prediction_channel.fixture_id: at most one channel per fixture
  - prediction_channel.message_id: broadcast message lookup
  - vote(channel_id, participant_id): exactly-once voting
*/
package db
