// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string

	DiscordToken     string
	DiscordChannelID string

	ScheduleURL   string
	ScoreboardURL string

	SweepInterval time.Duration
}

// ParseFlags validates flags with environment fallback. A .env file in
// the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var sweepSeconds int

	fs := flag.NewFlagSet("hoop-picks", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&sweepSeconds, "sweep", 0, "Sweep interval in seconds")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.DiscordToken, "discord-token", "", "Discord bot token (prefer env)")
	fs.StringVar(&cfg.DiscordChannelID, "discord-channel", "", "Discord channel for prompts")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3320 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "hoop-picks.db"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.DiscordToken == "" {
		cfg.DiscordToken = os.Getenv("DISCORD_TOKEN")
	}
	if cfg.DiscordChannelID == "" {
		cfg.DiscordChannelID = os.Getenv("DISCORD_CHANNEL_ID")
	}
	// Token and channel go together: prompts need somewhere to land.
	if cfg.DiscordToken != "" && cfg.DiscordChannelID == "" {
		return Config{}, errors.New("DISCORD_CHANNEL_ID required when DISCORD_TOKEN is set")
	}

	cfg.ScheduleURL = os.Getenv("SCHEDULE_URL")
	cfg.ScoreboardURL = os.Getenv("SCOREBOARD_URL")

	if sweepSeconds == 0 {
		if v := os.Getenv("SWEEP_INTERVAL_SECONDS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid SWEEP_INTERVAL_SECONDS env variable")
			}
			sweepSeconds = n
		} else {
			sweepSeconds = 60
		}
	}
	if sweepSeconds < 1 {
		return Config{}, errors.New("sweep interval must be at least 1 second")
	}
	cfg.SweepInterval = time.Duration(sweepSeconds) * time.Second

	return cfg, nil
}

// DriverName maps the configured database type to its sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
