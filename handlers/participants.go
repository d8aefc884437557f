// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hoop-picks/middleware"
	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/store"
)

type ParticipantHandler struct {
	participants *store.ParticipantStore
}

func NewParticipantHandler(participants *store.ParticipantStore) *ParticipantHandler {
	return &ParticipantHandler{participants: participants}
}

// Register handles POST /participants
// Idempotent: re-registering an existing external ID returns the same
// participant and leaves counters untouched.
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ExternalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "external_id is required")
		return
	}
	if req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name is required")
		return
	}

	id, err := h.participants.Register(r.Context(), req.ExternalID, req.DisplayName)
	if err != nil {
		slog.Error("failed to register participant", "error", err, "external_id", req.ExternalID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register participant")
		return
	}

	slog.Info("participant registered", "participant_id", id, "external_id", req.ExternalID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterParticipantResponse{
		ParticipantID: id,
	})
}
