// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hoop-picks/middleware"
	"github.com/danielhkuo/hoop-picks/store"
)

type StandingsHandler struct {
	participants *store.ParticipantStore
}

func NewStandingsHandler(participants *store.ParticipantStore) *StandingsHandler {
	return &StandingsHandler{participants: participants}
}

// GetStandings handles GET /standings
// Ordered by correct predictions, then participation.
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.participants.Standings(r.Context())
	if err != nil {
		slog.Error("failed to query standings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, standings)
}
