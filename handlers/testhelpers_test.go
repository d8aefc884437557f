// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/danielhkuo/hoop-picks/broadcast"
	"github.com/danielhkuo/hoop-picks/feed"
	"github.com/danielhkuo/hoop-picks/scheduler"
	"github.com/danielhkuo/hoop-picks/scoring"
	"github.com/danielhkuo/hoop-picks/store"
)

// stubFeed serves an empty schedule and scoreboard so handler tests can
// run scheduler-backed endpoints without network access.
type stubFeed struct{}

func (stubFeed) FullSchedule(ctx context.Context) ([]feed.ScheduledGame, error) { return nil, nil }
func (stubFeed) LiveScores(ctx context.Context) ([]feed.ScoreUpdate, error)     { return nil, nil }

type stubBroadcaster struct{}

func (stubBroadcaster) BroadcastPrompt(ctx context.Context, p broadcast.Prompt) (string, error) {
	return "stub-message", nil
}

func (stubBroadcaster) StopAccepting(ctx context.Context, messageID string) error {
	return nil
}

func newTestScheduler(t *testing.T, conn *sql.DB) *scheduler.Scheduler {
	t.Helper()
	return scheduler.New(
		store.NewFixtureStore(conn),
		store.NewChannelRegistry(conn),
		scoring.NewAggregator(conn),
		stubFeed{},
		stubBroadcaster{},
	)
}
