// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the service.

# Entities

Four entities, all owned by the durable store:

  - Fixture: one scheduled game, keyed by the feed's external ID
  - Channel: the single broadcast message collecting votes for a fixture
  - Participant: a registered voter with cumulative counters
  - Vote: one participant's choice for one channel

# Lifecycle

Fixtures move monotonically:

	scheduled{channel:none} → scheduled{open} → scheduled{closed} → completed

Channel open/closed state is never stored; it is derived from the
fixture's prediction_closed flag via Fixture.ChannelState, so the two
can never disagree.

# Error Kinds

errors.go declares the sentinel errors every caller matches with
errors.Is: ErrNotFound, ErrAlreadyVoted, ErrAlreadyOpen,
ErrChannelClosed, ErrNotReady, ErrFeedUnavailable.
*/
package models
