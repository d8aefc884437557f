// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler drives each fixture through its lifecycle:

	scheduled{no channel} → scheduled{open} → scheduled{closed} → completed

# Phases

A sweep runs four idempotent phases in order:

 1. Ingest - upsert the full schedule feed
 2. OpenChannels - broadcast prompts for today's window
 3. CloseChannels - stop input 10 minutes before tip-off
 4. Reconcile - settle feed-final fixtures and update standings

Transitions are monotonic and every phase is safe to re-run, so sweeps
can overlap (a manual trigger during a periodic run) without corrupting
state. A fixture can complete while its channel is still nominally open
when a game ends before the close sweep fires; scoring accepts that,
because vote validity was enforced at cast time.

# Time

"Today" is [local midnight, next local midnight + 2h) at a fixed UTC−3
offset (LocalZone). The current time is an injected func for
deterministic boundary tests.
*/
package scheduler
