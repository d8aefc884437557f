// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bwmarrin/discordgo"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/hoop-picks/broadcast"
	"github.com/danielhkuo/hoop-picks/cliparse"
	"github.com/danielhkuo/hoop-picks/db"
	"github.com/danielhkuo/hoop-picks/feed"
	"github.com/danielhkuo/hoop-picks/router"
	"github.com/danielhkuo/hoop-picks/scheduler"
	"github.com/danielhkuo/hoop-picks/scoring"
	"github.com/danielhkuo/hoop-picks/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == "sqlite" {
		// SQLite is single-writer
		dbConn.SetMaxOpenConns(1)
		dbConn.SetMaxIdleConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Stores shared by scheduler and messaging intake
	fixtures := store.NewFixtureStore(dbConn)
	channels := store.NewChannelRegistry(dbConn)
	ledger := store.NewVoteLedger(dbConn)
	participants := store.NewParticipantStore(dbConn)
	aggregator := scoring.NewAggregator(dbConn)
	feedClient := feed.NewClient(cfg.ScheduleURL, cfg.ScoreboardURL)

	// Messaging collaborator (optional: service runs headless without it)
	var broadcaster scheduler.Broadcaster = broadcast.Disabled{}
	var session *discordgo.Session
	if cfg.DiscordToken != "" {
		session, err = discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			slog.Error("discord session init failed", "error", err)
			os.Exit(1)
		}
		session.Identify.Intents = discordgo.IntentsGuildMessages

		intake := broadcast.NewIntake(participants, channels, ledger)
		session.AddHandler(intake.HandleInteraction)
		session.AddHandler(intake.HandleMessageCreate)

		if err := session.Open(); err != nil {
			slog.Error("discord connection failed", "error", err)
			os.Exit(1)
		}
		defer session.Close()

		broadcaster = broadcast.NewDiscord(session, cfg.DiscordChannelID)
		slog.Info("Discord connected", "channel_id", cfg.DiscordChannelID)
	} else {
		slog.Warn("DISCORD_TOKEN not set: prompts and votes disabled")
	}

	// Lifecycle scheduler
	sched := scheduler.New(fixtures, channels, aggregator, feedClient, broadcaster)
	schedCtx, stopSched := context.WithCancel(context.Background())
	defer stopSched()
	go sched.Run(schedCtx, cfg.SweepInterval)

	// Create router
	mux := router.NewRouter(dbConn, cfg, sched)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		stopSched()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
