// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Custom ID prefix for prompt buttons. The suffix is the vote choice.
const pickPrefix = "pick:"

// Discord broadcasts prompts into one guild channel and stops them by
// stripping the buttons off the message.
type Discord struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscord(session *discordgo.Session, channelID string) *Discord {
	return &Discord{session: session, channelID: channelID}
}

// BroadcastPrompt posts the prompt as a message with one button per
// option and returns the message ID, which becomes the channel's
// broadcast identifier.
func (d *Discord) BroadcastPrompt(ctx context.Context, p Prompt) (string, error) {
	buttons := make([]discordgo.MessageComponent, 0, len(p.Options))
	for _, opt := range p.Options {
		buttons = append(buttons, discordgo.Button{
			Label:    opt.Label,
			Style:    discordgo.PrimaryButton,
			CustomID: pickPrefix + opt.Choice,
		})
	}

	msg, err := d.session.ChannelMessageSendComplex(d.channelID, &discordgo.MessageSend{
		Content: p.Headline + "\n" + p.Question,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("broadcast: send prompt: %w", err)
	}
	return msg.ID, nil
}

// StopAccepting removes the buttons from the prompt message so no
// further input arrives. An error here means the prompt is still live;
// the caller must not mark the fixture closed.
func (d *Discord) StopAccepting(ctx context.Context, messageID string) error {
	none := []discordgo.MessageComponent{}
	_, err := d.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    d.channelID,
		Components: &none,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("broadcast: stop accepting on %s: %w", messageID, err)
	}
	return nil
}
