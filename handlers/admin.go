// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hoop-picks/auth"
	"github.com/danielhkuo/hoop-picks/cliparse"
	"github.com/danielhkuo/hoop-picks/middleware"
	"github.com/danielhkuo/hoop-picks/models"
	"github.com/danielhkuo/hoop-picks/scheduler"
	"github.com/danielhkuo/hoop-picks/store"
)

type AdminHandler struct {
	cfg    cliparse.Config
	sched  *scheduler.Scheduler
	ledger *store.VoteLedger
}

func NewAdminHandler(cfg cliparse.Config, sched *scheduler.Scheduler, ledger *store.VoteLedger) *AdminHandler {
	return &AdminHandler{cfg: cfg, sched: sched, ledger: ledger}
}

// Sweep handles POST /admin/sweep
// Runs one full scheduler sweep immediately. Safe to trigger while a
// periodic sweep is in flight; every phase is idempotent.
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	h.sched.Sweep(r.Context())

	slog.Info("manual sweep completed")
	middleware.JSONResponse(w, http.StatusOK, models.SweepResponse{Message: "sweep completed"})
}

// Recount handles POST /admin/recount
// Rebuilds participation counters from the vote ledger.
func (h *AdminHandler) Recount(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	if err := h.ledger.RecountParticipation(r.Context()); err != nil {
		slog.Error("participation recount failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Recount failed")
		return
	}

	slog.Info("participation recounted")
	middleware.JSONResponse(w, http.StatusOK, models.SweepResponse{Message: "participation recounted"})
}
