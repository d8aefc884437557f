// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Default NBA CDN endpoints. Both are unauthenticated static JSON.
const (
	DefaultScheduleURL   = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2_1.json"
	DefaultScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
)

const requestTimeout = 20 * time.Second

// Client fetches the season schedule and the daily scoreboard. Network
// and parse failures come back as errors for the caller to log; the
// scheduler treats them as "retry next sweep".
type Client struct {
	scheduleURL   string
	scoreboardURL string
	httpClient    *http.Client
}

func NewClient(scheduleURL, scoreboardURL string) *Client {
	if scheduleURL == "" {
		scheduleURL = DefaultScheduleURL
	}
	if scoreboardURL == "" {
		scoreboardURL = DefaultScoreboardURL
	}
	return &Client{
		scheduleURL:   scheduleURL,
		scoreboardURL: scoreboardURL,
		httpClient:    &http.Client{Timeout: requestTimeout},
	}
}

// FullSchedule downloads the complete season schedule, flattened across
// game dates. Entries without a usable start time are skipped and
// logged; a partially bad feed still yields the good entries.
func (c *Client) FullSchedule(ctx context.Context) ([]ScheduledGame, error) {
	var resp scheduleResponse
	if err := c.getJSON(ctx, c.scheduleURL, &resp); err != nil {
		return nil, err
	}

	var games []ScheduledGame
	for _, day := range resp.LeagueSchedule.GameDates {
		for _, g := range day.Games {
			if g.GameDateTimeUTC == "" {
				slog.Warn("schedule entry missing start time, skipped", "game_id", g.GameID)
				continue
			}
			startsAt, err := time.Parse(time.RFC3339, g.GameDateTimeUTC)
			if err != nil {
				slog.Warn("schedule entry has unparseable start time, skipped",
					"game_id", g.GameID, "value", g.GameDateTimeUTC)
				continue
			}
			games = append(games, ScheduledGame{
				ExternalID:  g.GameID,
				HomeTeam:    g.HomeTeam.TeamCity + " " + g.HomeTeam.TeamName,
				AwayTeam:    g.AwayTeam.TeamCity + " " + g.AwayTeam.TeamName,
				HomeTricode: g.HomeTeam.TeamTricode,
				AwayTricode: g.AwayTeam.TeamTricode,
				StartsAt:    startsAt.UTC(),
				Broadcast:   g.Broadcasters.tvNetwork(),
			})
		}
	}
	return games, nil
}

// LiveScores downloads today's scoreboard.
func (c *Client) LiveScores(ctx context.Context) ([]ScoreUpdate, error) {
	var resp scoreboardResponse
	if err := c.getJSON(ctx, c.scoreboardURL, &resp); err != nil {
		return nil, err
	}

	updates := make([]ScoreUpdate, 0, len(resp.Scoreboard.Games))
	for _, g := range resp.Scoreboard.Games {
		updates = append(updates, ScoreUpdate{
			ExternalID: g.GameID,
			HomeScore:  g.HomeTeam.Score,
			AwayScore:  g.AwayTeam.Score,
			StatusText: g.GameStatusText,
		})
	}
	return updates, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("feed: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed: get %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("feed: decode %s: %w", url, err)
	}
	return nil
}
