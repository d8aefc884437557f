// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Fixture status constants
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Outcome constants
const (
	OutcomeHomeWins = "home-wins"
	OutcomeAwayWins = "away-wins"
)

// Vote choice constants
const (
	ChoiceHome = "home"
	ChoiceAway = "away"
)

// Channel state constants (derived, never stored)
const (
	ChannelOpen   = "open"
	ChannelClosed = "closed"
)

// Request types

type RegisterParticipantRequest struct {
	ExternalID  string `json:"external_id"`
	DisplayName string `json:"display_name"`
}

// Response types

type RegisterParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
}

type SweepResponse struct {
	Message string `json:"message"`
}

// Domain types

type Fixture struct {
	ID               string    `json:"id"`
	ExternalID       string    `json:"external_id"`
	HomeTeam         string    `json:"home_team"`
	AwayTeam         string    `json:"away_team"`
	HomeTricode      string    `json:"home_tricode"`
	AwayTricode      string    `json:"away_tricode"`
	StartsAt         time.Time `json:"starts_at"`
	Status           string    `json:"status"`
	Outcome          *string   `json:"outcome,omitempty"`
	HomeScore        *int      `json:"home_score,omitempty"`
	AwayScore        *int      `json:"away_score,omitempty"`
	PredictionClosed bool      `json:"prediction_closed"`
	Broadcast        *string   `json:"broadcast,omitempty"`
}

// ChannelState derives the prediction channel state from the fixture's
// close flag. The flag is the single source of truth; the channel row
// never stores open/closed itself.
func (f Fixture) ChannelState() string {
	if f.PredictionClosed {
		return ChannelClosed
	}
	return ChannelOpen
}

// WinningChoice maps the fixture outcome to the vote choice that wins.
// Empty string when the fixture has no outcome yet.
func (f Fixture) WinningChoice() string {
	if f.Outcome == nil {
		return ""
	}
	if *f.Outcome == OutcomeHomeWins {
		return ChoiceHome
	}
	return ChoiceAway
}

type Channel struct {
	ID        string    `json:"id"`
	FixtureID string    `json:"fixture_id"`
	MessageID string    `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Participant struct {
	ID                 string `json:"id"`
	ExternalID         string `json:"external_id"`
	DisplayName        string `json:"display_name"`
	CorrectCount       int    `json:"correct_count"`
	ParticipationCount int    `json:"participation_count"`
}

type Vote struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	ChannelID     string    `json:"channel_id"`
	Choice        string    `json:"choice"`
	CastAt        time.Time `json:"cast_at"`
}

type Standing struct {
	DisplayName        string `json:"display_name"`
	CorrectCount       int    `json:"correct_count"`
	ParticipationCount int    `json:"participation_count"`
}

// FixtureWithChannel pairs a fixture with its channel for the today
// listing. Channel is nil when no prompt has been broadcast yet.
type FixtureWithChannel struct {
	Fixture Fixture  `json:"fixture"`
	Channel *Channel `json:"channel,omitempty"`
	State   string   `json:"state"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
