// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/store"
	"github.com/danielhkuo/hoop-picks/testutil"
)

func TestCastVoteReplies(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	ctx := context.Background()
	fixtures := store.NewFixtureStore(conn)
	intake := NewIntake(
		store.NewParticipantStore(conn),
		store.NewChannelRegistry(conn),
		store.NewVoteLedger(conn),
	)
	intake.now = func() time.Time {
		return time.Date(2024, 1, 10, 22, 40, 0, 0, time.UTC)
	}

	start := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	fixtureID := testutil.CreateTestFixture(t, conn, "game-1", start)
	testutil.OpenTestChannel(t, conn, fixtureID, "msg-1")
	testutil.CreateTestParticipant(t, conn, "user-1", "Alice")

	closedFixture := testutil.CreateTestFixture(t, conn, "game-2", start)
	testutil.OpenTestChannel(t, conn, closedFixture, "msg-2")
	if err := fixtures.MarkPredictionClosed(ctx, "game-2"); err != nil {
		t.Fatalf("MarkPredictionClosed failed: %v", err)
	}

	tests := []struct {
		name      string
		userID    string
		messageID string
		choice    string
		contains  string
	}{
		{
			name:      "unregistered user",
			userID:    "stranger",
			messageID: "msg-1",
			choice:    models.ChoiceHome,
			contains:  "not registered",
		},
		{
			name:      "untracked message",
			userID:    "user-1",
			messageID: "some-other-message",
			choice:    models.ChoiceHome,
			contains:  "not tracked",
		},
		{
			name:      "closed channel",
			userID:    "user-1",
			messageID: "msg-2",
			choice:    models.ChoiceHome,
			contains:  "closed",
		},
		{
			name:      "successful pick",
			userID:    "user-1",
			messageID: "msg-1",
			choice:    models.ChoiceHome,
			contains:  "Your pick is in",
		},
		{
			name:      "repeat pick",
			userID:    "user-1",
			messageID: "msg-1",
			choice:    models.ChoiceAway,
			contains:  "already picked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := intake.castVote(ctx, tt.userID, tt.messageID, tt.choice)
			if !strings.Contains(reply, tt.contains) {
				t.Errorf("Expected reply containing %q, got %q", tt.contains, reply)
			}
		})
	}
}

func TestFormatStandings(t *testing.T) {
	if got := formatStandings(nil); !strings.Contains(got, "No participants") {
		t.Errorf("Unexpected empty-board message: %q", got)
	}

	got := formatStandings([]models.Standing{
		{DisplayName: "Alice", CorrectCount: 7, ParticipationCount: 10},
		{DisplayName: "Bob", CorrectCount: 5, ParticipationCount: 12},
	})
	if !strings.Contains(got, "Alice: 7 correct | 10 picks") {
		t.Errorf("Expected Alice's line in standings, got %q", got)
	}
	if !strings.Contains(got, "Bob: 5 correct | 12 picks") {
		t.Errorf("Expected Bob's line in standings, got %q", got)
	}
	if strings.Index(got, "Alice") > strings.Index(got, "Bob") {
		t.Error("Expected Alice listed before Bob")
	}
}
