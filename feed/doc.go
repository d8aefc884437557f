// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed wraps the NBA CDN JSON endpoints: the full season schedule
and the daily scoreboard.

Only the consumed fields are modeled. Failures are plain errors - the
scheduler logs them and retries on the next sweep; they never abort
later phases.
*/
package feed
