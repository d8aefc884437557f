// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/hoop-picks/cliparse"
	"github.com/danielhkuo/hoop-picks/handlers"
	"github.com/danielhkuo/hoop-picks/middleware"
	"github.com/danielhkuo/hoop-picks/scheduler"
	"github.com/danielhkuo/hoop-picks/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sched *scheduler.Scheduler) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize stores and handlers
	fixtures := store.NewFixtureStore(db)
	channels := store.NewChannelRegistry(db)
	ledger := store.NewVoteLedger(db)
	participants := store.NewParticipantStore(db)

	participantHandler := handlers.NewParticipantHandler(participants)
	standingsHandler := handlers.NewStandingsHandler(participants)
	fixtureHandler := handlers.NewFixtureHandler(fixtures, channels, sched)
	adminHandler := handlers.NewAdminHandler(cfg, sched, ledger)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public surface
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Register))
	mux.HandleFunc("GET /standings", middleware.WithLogging(standingsHandler.GetStandings))
	mux.HandleFunc("GET /fixtures/today", middleware.WithLogging(fixtureHandler.GetToday))

	// Operator surface (X-Admin-Key)
	mux.HandleFunc("POST /admin/sweep", middleware.WithLogging(adminHandler.Sweep))
	mux.HandleFunc("POST /admin/recount", middleware.WithLogging(adminHandler.Recount))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hoop-picks API v1"))
	})

	return mux
}
