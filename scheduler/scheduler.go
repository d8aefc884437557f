// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/hoop-picks/broadcast"
	"github.com/danielhkuo/hoop-picks/feed"
	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/scoring"
	"github.com/danielhkuo/hoop-picks/store"
)

// LocalZone is the fixed offset the group runs on. Deliberately not a
// DST-aware location: the prediction window has always been defined
// against UTC−3 wall time.
var LocalZone = time.FixedZone("UTC-3", -3*60*60)

// CloseLead is how long before tip-off a prediction channel closes.
const CloseLead = 10 * time.Minute

// Feed is the fixture-data collaborator.
type Feed interface {
	FullSchedule(ctx context.Context) ([]feed.ScheduledGame, error)
	LiveScores(ctx context.Context) ([]feed.ScoreUpdate, error)
}

// Broadcaster is the messaging collaborator.
type Broadcaster interface {
	BroadcastPrompt(ctx context.Context, p broadcast.Prompt) (string, error)
	StopAccepting(ctx context.Context, messageID string) error
}

// Scheduler drives the fixture/channel lifecycle in four idempotent
// phases. Sweeps may overlap or re-run at any cadence; every phase
// re-reads store state and no-ops on work already done.
type Scheduler struct {
	fixtures    *store.FixtureStore
	channels    *store.ChannelRegistry
	scores      *scoring.Aggregator
	feed        Feed
	broadcaster Broadcaster

	now   func() time.Time
	local *time.Location
}

func New(fixtures *store.FixtureStore, channels *store.ChannelRegistry, scores *scoring.Aggregator, fd Feed, broadcaster Broadcaster) *Scheduler {
	return &Scheduler{
		fixtures:    fixtures,
		channels:    channels,
		scores:      scores,
		feed:        fd,
		broadcaster: broadcaster,
		now:         time.Now,
		local:       LocalZone,
	}
}

// Run sweeps immediately, then on every tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	slog.Info("scheduler started", "interval", interval)
	s.Sweep(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs the four phases in order. A failing phase is logged and
// never aborts the later ones; whatever it missed is retried on the
// next sweep.
func (s *Scheduler) Sweep(ctx context.Context) {
	if err := s.Ingest(ctx); err != nil {
		slog.Error("ingest phase failed", "error", err)
	}
	if err := s.OpenChannels(ctx); err != nil {
		slog.Error("open phase failed", "error", err)
	}
	if err := s.CloseChannels(ctx); err != nil {
		slog.Error("close phase failed", "error", err)
	}
	if err := s.Reconcile(ctx); err != nil {
		slog.Error("reconcile phase failed", "error", err)
	}
}

// Ingest pulls the full schedule and upserts every entry. Re-ingestion
// is idempotent; settled fixtures are never rewound.
func (s *Scheduler) Ingest(ctx context.Context) error {
	games, err := s.feed.FullSchedule(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedUnavailable, err)
	}

	var processed, failed int
	for _, g := range games {
		_, err := s.fixtures.Upsert(ctx, store.FixtureUpsert{
			ExternalID:  g.ExternalID,
			HomeTeam:    g.HomeTeam,
			AwayTeam:    g.AwayTeam,
			HomeTricode: g.HomeTricode,
			AwayTricode: g.AwayTricode,
			StartsAt:    g.StartsAt,
			Broadcast:   g.Broadcast,
		})
		if err != nil {
			slog.Error("upsert fixture failed", "error", err, "external_id", g.ExternalID)
			failed++
			continue
		}
		processed++
	}
	slog.Info("schedule ingested", "processed", processed, "failed", failed)
	return nil
}

// TodayWindow returns the half-open interval of "today" in the group's
// local zone: [local midnight, next local midnight + 2h). Games tipping
// off before 02:00 local still belong to the previous day's slate.
func (s *Scheduler) TodayWindow() (time.Time, time.Time) {
	local := s.now().In(s.local)
	lo := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.local)
	hi := lo.AddDate(0, 0, 1).Add(2 * time.Hour)
	return lo, hi
}

// OpenChannels broadcasts a prompt for each of today's fixtures that
// does not have one yet. The store's one-channel-per-fixture constraint
// makes a racing duplicate open harmless.
func (s *Scheduler) OpenChannels(ctx context.Context) error {
	lo, hi := s.TodayWindow()
	todays, err := s.fixtures.InWindow(ctx, lo, hi)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	for _, f := range todays {
		if f.Status != models.StatusScheduled || f.PredictionClosed {
			continue
		}
		_, err := s.channels.ByFixture(ctx, f.ID)
		if err == nil {
			continue // already prompted
		}
		if !errors.Is(err, models.ErrNotFound) {
			slog.Error("channel lookup failed", "error", err, "fixture_id", f.ID)
			continue
		}

		messageID, err := s.broadcaster.BroadcastPrompt(ctx, broadcast.BuildPrompt(f, s.local))
		if err != nil {
			slog.Error("broadcast prompt failed", "error", err, "external_id", f.ExternalID)
			continue
		}
		if _, err := s.channels.Open(ctx, f.ID, messageID, s.now()); err != nil {
			if errors.Is(err, models.ErrAlreadyOpen) {
				slog.Warn("channel already open, duplicate prompt broadcast",
					"external_id", f.ExternalID, "message_id", messageID)
				continue
			}
			slog.Error("open channel failed", "error", err, "external_id", f.ExternalID)
			continue
		}
		slog.Info("prediction channel opened", "external_id", f.ExternalID,
			"message_id", messageID, "starts_at", f.StartsAt)
	}
	return nil
}

// CloseChannels closes every channel whose fixture is imminent. The
// close flag is only set after the broadcaster confirms it stopped
// accepting input; a failed stop leaves the fixture open for the next
// sweep to retry.
func (s *Scheduler) CloseChannels(ctx context.Context) error {
	open, err := s.fixtures.OpenScheduled(ctx)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	now := s.now()
	for _, f := range open {
		closeAt := f.StartsAt.Add(-CloseLead)
		if now.Before(closeAt) {
			continue
		}
		ch, err := s.channels.ByFixture(ctx, f.ID)
		if errors.Is(err, models.ErrNotFound) {
			continue // never prompted, nothing to stop
		}
		if err != nil {
			slog.Error("channel lookup failed", "error", err, "fixture_id", f.ID)
			continue
		}

		if err := s.broadcaster.StopAccepting(ctx, ch.MessageID); err != nil {
			slog.Error("stop accepting failed, will retry", "error", err,
				"external_id", f.ExternalID, "message_id", ch.MessageID)
			continue
		}
		if err := s.fixtures.MarkPredictionClosed(ctx, f.ExternalID); err != nil {
			slog.Error("mark closed failed", "error", err, "external_id", f.ExternalID)
			continue
		}
		slog.Info("prediction channel closed", "external_id", f.ExternalID,
			"starts_at", f.StartsAt)
	}
	return nil
}

// Reconcile pulls the scoreboard and settles every fixture the feed
// reports as final, then folds its votes into the standings. Both
// halves are idempotent, so a crash between them heals on the next
// sweep.
func (s *Scheduler) Reconcile(ctx context.Context) error {
	updates, err := s.feed.LiveScores(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedUnavailable, err)
	}

	for _, u := range updates {
		if !u.Final() {
			continue
		}
		err := s.fixtures.RecordOutcome(ctx, u.ExternalID, u.HomeScore, u.AwayScore)
		if errors.Is(err, models.ErrNotFound) {
			slog.Warn("final score for unknown fixture", "external_id", u.ExternalID)
			continue
		}
		if err != nil {
			slog.Error("record outcome failed", "error", err, "external_id", u.ExternalID)
			continue
		}

		f, err := s.fixtures.ByExternalID(ctx, u.ExternalID)
		if err != nil {
			slog.Error("fixture lookup failed", "error", err, "external_id", u.ExternalID)
			continue
		}
		if err := s.scores.ReconcileFixtureScores(ctx, f.ID); err != nil {
			slog.Error("score reconciliation failed", "error", err, "external_id", u.ExternalID)
			continue
		}
	}
	return nil
}
