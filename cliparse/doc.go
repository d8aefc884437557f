// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables, with a .env file autoloaded for development.

# Precedence

CLI flags win over environment variables, which win over defaults:

	hoop-picks -p 3320 -t sqlite -d hoop-picks.db

# Settings

  - PORT (-p): HTTP port (default 3320)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string, or SQLite path
  - ADMIN_KEY_SALT (--admin-salt): secret for the operator key, required
  - DISCORD_TOKEN / DISCORD_CHANNEL_ID: messaging collaborator; the
    service runs without them (HTTP surface only)
  - SCHEDULE_URL / SCOREBOARD_URL: feed override, defaults to the NBA CDN
  - SWEEP_INTERVAL_SECONDS (--sweep): scheduler cadence (default 60)
*/
package cliparse
