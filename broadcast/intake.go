// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/store"
)

const intakeTimeout = 10 * time.Second

// Intake turns inbound Discord events into domain operations: button
// presses on prompt messages become votes, and the join/standings text
// commands hit the participant store.
type Intake struct {
	participants *store.ParticipantStore
	channels     *store.ChannelRegistry
	ledger       *store.VoteLedger

	now func() time.Time
}

func NewIntake(participants *store.ParticipantStore, channels *store.ChannelRegistry, ledger *store.VoteLedger) *Intake {
	return &Intake{
		participants: participants,
		channels:     channels,
		ledger:       ledger,
		now:          time.Now,
	}
}

// HandleInteraction is registered as a discordgo event handler. Only
// prompt-button presses are handled; everything else is ignored.
func (in *Intake) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, pickPrefix) {
		return
	}
	choice := strings.TrimPrefix(customID, pickPrefix)

	user := interactionUser(i)
	if user == nil || i.Message == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), intakeTimeout)
	defer cancel()

	reply := in.castVote(ctx, user.ID, i.Message.ID, choice)
	respondEphemeral(s, i, reply)
}

// castVote resolves the participant and channel, records the vote and
// returns the text to show the voter.
func (in *Intake) castVote(ctx context.Context, userID, messageID, choice string) string {
	participant, err := in.participants.ByExternalID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return "You are not registered yet. Send !join first."
	}
	if err != nil {
		slog.Error("vote intake: participant lookup failed", "error", err, "user_id", userID)
		return "Something went wrong, try again later."
	}

	channel, err := in.channels.ByMessageID(ctx, messageID)
	if errors.Is(err, models.ErrNotFound) {
		return "This prediction is not tracked anymore."
	}
	if err != nil {
		slog.Error("vote intake: channel lookup failed", "error", err, "message_id", messageID)
		return "Something went wrong, try again later."
	}

	_, err = in.ledger.CastVote(ctx, participant.ID, channel.ID, choice, in.now())
	switch {
	case errors.Is(err, models.ErrChannelClosed):
		return "Predictions for this game are closed."
	case errors.Is(err, models.ErrAlreadyVoted):
		return "You already picked for this game. The first pick stands."
	case err != nil:
		slog.Error("vote intake: cast vote failed", "error", err,
			"participant_id", participant.ID, "channel_id", channel.ID)
		return "Something went wrong, try again later."
	}

	slog.Info("vote recorded", "participant_id", participant.ID,
		"channel_id", channel.ID, "choice", choice)
	return "Your pick is in: " + choice + " ✅"
}

// HandleMessageCreate serves the !join and !standings text commands.
func (in *Intake) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), intakeTimeout)
	defer cancel()

	switch strings.TrimSpace(m.Content) {
	case "!join":
		name := m.Author.Username
		if m.Member != nil && m.Member.Nick != "" {
			name = m.Member.Nick
		}
		if _, err := in.participants.Register(ctx, m.Author.ID, name); err != nil {
			slog.Error("join command failed", "error", err, "user_id", m.Author.ID)
			return
		}
		s.ChannelMessageSend(m.ChannelID, "You're in! Your picks now count for the standings. 🏀")

	case "!standings":
		standings, err := in.participants.Standings(ctx)
		if err != nil {
			slog.Error("standings command failed", "error", err)
			return
		}
		s.ChannelMessageSend(m.ChannelID, formatStandings(standings))
	}
}

func formatStandings(standings []models.Standing) string {
	if len(standings) == 0 {
		return "No participants on the board yet."
	}
	var b strings.Builder
	b.WriteString("🏆 STANDINGS 🏆\n\n")
	for _, st := range standings {
		fmt.Fprintf(&b, "%s: %d correct | %d picks\n",
			st.DisplayName, st.CorrectCount, st.ParticipationCount)
	}
	return b.String()
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("interaction respond failed", "error", err)
	}
}
