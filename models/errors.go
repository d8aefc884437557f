// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Error kinds surfaced by the store and scoring layers. Constraint
// violations coming out of the database are translated into these at
// the call site; raw driver errors never cross package boundaries.
var (
	// ErrNotFound is returned on any lookup miss. Always recoverable;
	// the caller decides what it means.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyVoted is returned when a (participant, channel) pair
	// already has a vote. The first vote stands.
	ErrAlreadyVoted = errors.New("already voted")

	// ErrAlreadyOpen is returned when a prediction channel already
	// exists for the fixture.
	ErrAlreadyOpen = errors.New("channel already open")

	// ErrChannelClosed is returned for vote attempts after the
	// fixture's close flag is set. A rejection, not a bug.
	ErrChannelClosed = errors.New("channel closed")

	// ErrNotReady is returned when scoring is requested before the
	// fixture has a settled outcome. The caller retries later.
	ErrNotReady = errors.New("fixture not ready for scoring")

	// ErrFeedUnavailable wraps transient fixture-feed failures. Sweep
	// phases log it and continue with whatever data is present.
	ErrFeedUnavailable = errors.New("fixture feed unavailable")
)
