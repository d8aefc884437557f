// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"strings"
	"time"
)

// ScheduledGame is one schedule entry, reduced to the fields this
// service consumes.
type ScheduledGame struct {
	ExternalID  string
	HomeTeam    string
	AwayTeam    string
	HomeTricode string
	AwayTricode string
	StartsAt    time.Time // UTC
	Broadcast   *string   // friendly TV network name, when listed
}

// ScoreUpdate is one scoreboard entry.
type ScoreUpdate struct {
	ExternalID string
	HomeScore  int
	AwayScore  int
	StatusText string
}

// Final reports whether the scoreboard considers the game over.
// Covers both "Final" and "Final/OT".
func (s ScoreUpdate) Final() bool {
	return strings.HasPrefix(s.StatusText, "Final")
}

// Wire types, mirroring only the JSON fields we read.

type scheduleResponse struct {
	LeagueSchedule struct {
		GameDates []struct {
			Games []scheduleGame `json:"games"`
		} `json:"gameDates"`
	} `json:"leagueSchedule"`
}

type scheduleGame struct {
	GameID          string       `json:"gameId"`
	GameDateTimeUTC string       `json:"gameDateTimeUTC"`
	HomeTeam        scheduleTeam `json:"homeTeam"`
	AwayTeam        scheduleTeam `json:"awayTeam"`
	Broadcasters    broadcasters `json:"broadcasters"`
}

type scheduleTeam struct {
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
	TeamTricode string `json:"teamTricode"`
}

type broadcasters struct {
	IntlTvBroadcasters     []broadcaster `json:"intlTvBroadcasters"`
	NationalTvBroadcasters []broadcaster `json:"nationalTvBroadcasters"`
	HomeTvBroadcasters     []broadcaster `json:"homeTvBroadcasters"`
	AwayTvBroadcasters     []broadcaster `json:"awayTvBroadcasters"`
}

type broadcaster struct {
	BroadcasterMedia   string `json:"broadcasterMedia"`
	BroadcasterDisplay string `json:"broadcasterDisplay"`
}

// tvNetwork picks a friendly TV network from the broadcaster lists,
// international first, then national, then home, then away.
func (b broadcasters) tvNetwork() *string {
	for _, list := range [][]broadcaster{
		b.IntlTvBroadcasters,
		b.NationalTvBroadcasters,
		b.HomeTvBroadcasters,
		b.AwayTvBroadcasters,
	} {
		for _, item := range list {
			if item.BroadcasterMedia == "tv" && item.BroadcasterDisplay != "" {
				display := item.BroadcasterDisplay
				return &display
			}
		}
	}
	return nil
}

type scoreboardResponse struct {
	Scoreboard struct {
		Games []scoreboardGame `json:"games"`
	} `json:"scoreboard"`
}

type scoreboardGame struct {
	GameID         string         `json:"gameId"`
	GameStatusText string         `json:"gameStatusText"`
	HomeTeam       scoreboardTeam `json:"homeTeam"`
	AwayTeam       scoreboardTeam `json:"awayTeam"`
}

type scoreboardTeam struct {
	Score int `json:"score"`
}
