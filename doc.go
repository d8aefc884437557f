// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hoop-picks server.

hoop-picks tracks the NBA fixture feed, opens one prediction prompt per
game in a Discord channel, accepts exactly-once picks via message
buttons, closes picks ten minutes before tip-off, and turns final
scores into participant standings.

# Starting the Server

The server runs on SQLite by default:

	ADMIN_KEY_SALT=... DISCORD_TOKEN=... DISCORD_CHANNEL_ID=... go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

Without a Discord token the service still ingests fixtures, reconciles
outcomes and serves the HTTP surface; prompts and votes are disabled.

# Architecture

  - store: fixtures, channels, votes, participants over database/sql
  - scheduler: four idempotent lifecycle phases on a ticker
  - scoring: idempotent standings reconciliation
  - feed: NBA CDN schedule/scoreboard client
  - broadcast: Discord prompts, button intake, text commands
  - handlers/router/middleware: HTTP read + operator surface
  - cliparse, auth, db: configuration, operator key, schema

See package documentation for each component.
*/
package main
