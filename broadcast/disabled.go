// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"context"
	"errors"
)

var errDisabled = errors.New("broadcast: no messaging session configured")

// Disabled stands in for the messaging collaborator when no Discord
// token is configured. Prompts fail (so no channel ever opens) and the
// rest of the service - ingestion, reconciliation, the HTTP surface -
// keeps working.
type Disabled struct{}

func (Disabled) BroadcastPrompt(ctx context.Context, p Prompt) (string, error) {
	return "", errDisabled
}

func (Disabled) StopAccepting(ctx context.Context, messageID string) error {
	return errDisabled
}
