// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleSchedule = `{
	"leagueSchedule": {
		"gameDates": [
			{
				"games": [
					{
						"gameId": "0022400001",
						"gameDateTimeUTC": "2024-01-10T23:00:00Z",
						"homeTeam": {"teamCity": "Boston", "teamName": "Celtics", "teamTricode": "BOS"},
						"awayTeam": {"teamCity": "Los Angeles", "teamName": "Lakers", "teamTricode": "LAL"},
						"broadcasters": {
							"nationalTvBroadcasters": [
								{"broadcasterMedia": "tv", "broadcasterDisplay": "ESPN"}
							]
						}
					},
					{
						"gameId": "0022400002",
						"gameDateTimeUTC": "",
						"homeTeam": {"teamCity": "Denver", "teamName": "Nuggets", "teamTricode": "DEN"},
						"awayTeam": {"teamCity": "Phoenix", "teamName": "Suns", "teamTricode": "PHX"},
						"broadcasters": {}
					}
				]
			},
			{
				"games": [
					{
						"gameId": "0022400003",
						"gameDateTimeUTC": "not-a-timestamp",
						"homeTeam": {"teamCity": "Miami", "teamName": "Heat", "teamTricode": "MIA"},
						"awayTeam": {"teamCity": "Chicago", "teamName": "Bulls", "teamTricode": "CHI"},
						"broadcasters": {}
					}
				]
			}
		]
	}
}`

const sampleScoreboard = `{
	"scoreboard": {
		"games": [
			{
				"gameId": "0022400001",
				"gameStatusText": "Final",
				"homeTeam": {"score": 110},
				"awayTeam": {"score": 102}
			},
			{
				"gameId": "0022400004",
				"gameStatusText": "Q2 5:30",
				"homeTeam": {"score": 45},
				"awayTeam": {"score": 51}
			}
		]
	}
}`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleSchedule))
	})
	mux.HandleFunc("/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleScoreboard))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFullSchedule(t *testing.T) {
	server := newFeedServer(t)
	client := NewClient(server.URL+"/schedule", server.URL+"/scoreboard")

	games, err := client.FullSchedule(context.Background())
	if err != nil {
		t.Fatalf("FullSchedule failed: %v", err)
	}

	// The two entries with missing or broken start times are dropped
	if len(games) != 1 {
		t.Fatalf("Expected 1 usable game, got %d", len(games))
	}

	g := games[0]
	if g.ExternalID != "0022400001" {
		t.Errorf("Expected game ID 0022400001, got %s", g.ExternalID)
	}
	if g.HomeTeam != "Boston Celtics" || g.AwayTeam != "Los Angeles Lakers" {
		t.Errorf("Unexpected team names: %s / %s", g.HomeTeam, g.AwayTeam)
	}
	if g.HomeTricode != "BOS" || g.AwayTricode != "LAL" {
		t.Errorf("Unexpected tricodes: %s / %s", g.HomeTricode, g.AwayTricode)
	}
	expected := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	if !g.StartsAt.Equal(expected) {
		t.Errorf("Expected start %v, got %v", expected, g.StartsAt)
	}
	if g.Broadcast == nil || *g.Broadcast != "ESPN" {
		t.Errorf("Expected broadcast ESPN, got %v", g.Broadcast)
	}
}

func TestLiveScores(t *testing.T) {
	server := newFeedServer(t)
	client := NewClient(server.URL+"/schedule", server.URL+"/scoreboard")

	updates, err := client.LiveScores(context.Background())
	if err != nil {
		t.Fatalf("LiveScores failed: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates, got %d", len(updates))
	}

	final := updates[0]
	if final.ExternalID != "0022400001" || final.HomeScore != 110 || final.AwayScore != 102 {
		t.Errorf("Unexpected final update: %+v", final)
	}
	if !final.Final() {
		t.Error("Expected first update to be final")
	}
	if updates[1].Final() {
		t.Error("Expected second update not to be final")
	}
}

func TestFinal(t *testing.T) {
	tests := []struct {
		statusText string
		expected   bool
	}{
		{"Final", true},
		{"Final/OT", true},
		{"Final/2OT", true},
		{"Q4 0:30", false},
		{"Halftime", false},
		{"8:00 pm ET", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.statusText, func(t *testing.T) {
			u := ScoreUpdate{StatusText: tt.statusText}
			if u.Final() != tt.expected {
				t.Errorf("Final() for %q: expected %v, got %v", tt.statusText, tt.expected, u.Final())
			}
		})
	}
}

func TestTvNetworkPreference(t *testing.T) {
	tv := func(display string) broadcaster {
		return broadcaster{BroadcasterMedia: "tv", BroadcasterDisplay: display}
	}
	radio := func(display string) broadcaster {
		return broadcaster{BroadcasterMedia: "radio", BroadcasterDisplay: display}
	}

	tests := []struct {
		name     string
		b        broadcasters
		expected string
	}{
		{
			name: "international beats national",
			b: broadcasters{
				IntlTvBroadcasters:     []broadcaster{tv("NBA Intl")},
				NationalTvBroadcasters: []broadcaster{tv("ESPN")},
			},
			expected: "NBA Intl",
		},
		{
			name: "national beats home",
			b: broadcasters{
				NationalTvBroadcasters: []broadcaster{tv("TNT")},
				HomeTvBroadcasters:     []broadcaster{tv("Local Home TV")},
			},
			expected: "TNT",
		},
		{
			name: "home beats away",
			b: broadcasters{
				HomeTvBroadcasters: []broadcaster{tv("Local Home TV")},
				AwayTvBroadcasters: []broadcaster{tv("Local Away TV")},
			},
			expected: "Local Home TV",
		},
		{
			name: "radio entries skipped",
			b: broadcasters{
				NationalTvBroadcasters: []broadcaster{radio("ESPN Radio")},
				HomeTvBroadcasters:     []broadcaster{tv("Local Home TV")},
			},
			expected: "Local Home TV",
		},
		{
			name:     "nothing listed",
			b:        broadcasters{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.b.tvNetwork()
			if tt.expected == "" {
				if got != nil {
					t.Errorf("Expected nil network, got %v", *got)
				}
				return
			}
			if got == nil || *got != tt.expected {
				t.Errorf("Expected network %q, got %v", tt.expected, got)
			}
		})
	}
}

func TestFeedErrors(t *testing.T) {
	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer badServer.Close()

	client := NewClient(badServer.URL, badServer.URL)
	if _, err := client.FullSchedule(context.Background()); err == nil {
		t.Error("Expected error for non-200 schedule response")
	}
	if _, err := client.LiveScores(context.Background()); err == nil {
		t.Error("Expected error for non-200 scoreboard response")
	}

	garbageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer garbageServer.Close()

	client = NewClient(garbageServer.URL, garbageServer.URL)
	if _, err := client.FullSchedule(context.Background()); err == nil {
		t.Error("Expected error for unparseable schedule body")
	}
}
