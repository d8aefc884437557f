// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the durable single source of truth for fixtures,
channels, participants and votes.

# Stores

Each store is a thin struct over *sql.DB:

	fixtures := store.NewFixtureStore(db)
	channels := store.NewChannelRegistry(db)
	ledger := store.NewVoteLedger(db)
	participants := store.NewParticipantStore(db)

No store caches rows beyond a single operation; every mutating call
re-reads current state inside its own statement or transaction, which
keeps overlapping scheduler sweeps safe.

# Invariant Enforcement

Uniqueness is enforced by the database, never by check-then-insert:

  - fixture.external_id → Upsert is an idempotent ON CONFLICT
  - prediction_channel.fixture_id → second Open returns ErrAlreadyOpen
  - vote(channel_id, participant_id) → second CastVote returns
    ErrAlreadyVoted; the losing insert of a concurrent pair gets the
    same answer

CastVote inserts the vote and bumps the participation counter in one
transaction. If the counter is ever suspect, RecountParticipation
rebuilds it from the vote rows.

# Mutation Rules

Fixture transitions are monotonic. RecordOutcome only fires on a
'scheduled' row and is a no-op afterwards, so duplicate reconciliation
runs and feed glitches cannot rewrite a settled outcome.
*/
package store
