// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP read/operator surface. Voting itself
does not pass through here - votes arrive from the messaging
collaborator (see package broadcast).

# Handler Types

  - ParticipantHandler: idempotent registration
  - StandingsHandler: the ranking
  - FixtureHandler: today's slate with channel state
  - AdminHandler: manual sweep and participation recount

Handlers are created via constructor functions over the stores:

	standings := handlers.NewStandingsHandler(participants)

# Routes

	POST /participants     → Register
	GET  /standings        → GetStandings
	GET  /fixtures/today   → GetToday
	POST /admin/sweep      → Sweep (X-Admin-Key)
	POST /admin/recount    → Recount (X-Admin-Key)
*/
package handlers
