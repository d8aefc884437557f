// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"fmt"
	"time"

	"github.com/danielhkuo/hoop-picks/models"
)

// Prompt is the prediction prompt for one fixture: a headline line plus
// exactly two selectable options, away side first.
type Prompt struct {
	Headline string
	Question string
	Options  [2]Option
}

// Option is one selectable side of a prompt.
type Option struct {
	Label  string
	Choice string
}

// BuildPrompt renders a fixture into a prompt. The headline carries the
// tip-off time in the group's local zone and the TV network when one is
// listed:
//
//	20h00  ESPN  —  BOS x LAL
func BuildPrompt(f models.Fixture, local *time.Location) Prompt {
	start := f.StartsAt.In(local)
	headline := fmt.Sprintf("%02dh%02d", start.Hour(), start.Minute())
	if f.Broadcast != nil {
		headline += "  " + *f.Broadcast
	}
	headline += fmt.Sprintf("  —  %s x %s", f.AwayTricode, f.HomeTricode)

	return Prompt{
		Headline: headline,
		Question: "Who wins tonight?",
		Options: [2]Option{
			{Label: f.AwayTricode + " - " + f.AwayTeam, Choice: models.ChoiceAway},
			{Label: f.HomeTricode + " - " + f.HomeTeam, Choice: models.ChoiceHome},
		},
	}
}
