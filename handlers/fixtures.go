// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hoop-picks/middleware"
	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/scheduler"
	"github.com/danielhkuo/hoop-picks/store"
)

type FixtureHandler struct {
	fixtures *store.FixtureStore
	channels *store.ChannelRegistry
	sched    *scheduler.Scheduler
}

func NewFixtureHandler(fixtures *store.FixtureStore, channels *store.ChannelRegistry, sched *scheduler.Scheduler) *FixtureHandler {
	return &FixtureHandler{fixtures: fixtures, channels: channels, sched: sched}
}

// GetToday handles GET /fixtures/today
// Lists today's window with each fixture's channel state.
func (h *FixtureHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	lo, hi := h.sched.TodayWindow()
	todays, err := h.fixtures.InWindow(r.Context(), lo, hi)
	if err != nil {
		slog.Error("failed to query today's fixtures", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result := []models.FixtureWithChannel{}
	for _, f := range todays {
		entry := models.FixtureWithChannel{Fixture: f, State: f.ChannelState()}
		ch, err := h.channels.ByFixture(r.Context(), f.ID)
		if err == nil {
			entry.Channel = &ch
		} else if !errors.Is(err, models.ErrNotFound) {
			slog.Error("failed to query channel", "error", err, "fixture_id", f.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		result = append(result, entry)
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
