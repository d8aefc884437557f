// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring derives participant standings from the vote ledger and
fixture outcomes.

ReconcileFixtureScores recomputes each affected participant's
correct_count from scratch out of (votes ⨝ settled fixtures) rather
than incrementing a running total, so repeated invocations for the same
fixture - duplicate reconciliation sweeps, crash-and-rerun - cannot
double-count.
*/
package scoring
