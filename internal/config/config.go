package config

import (
	"errors"
	"os"
)

const (
	defaultDatabasePath = "quiz_bot.db"
	defaultHTTPAddr     = ":8080"
)

// Config carries the process settings, read from the environment.
type Config struct {
	BotToken     string
	DatabasePath string
	HTTPAddr     string
}

// Load reads the configuration. The bot token is required; everything
// else has a default.
func Load() (Config, error) {
	cfg := FromEnv()
	if cfg.BotToken == "" {
		return Config{}, errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	}
	return cfg, nil
}

// FromEnv reads the configuration without requiring the bot token, for
// tools that never talk to Telegram.
func FromEnv() Config {
	return Config{
		BotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabasePath: envOr("QUIZ_DB_PATH", defaultDatabasePath),
		HTTPAddr:     envOr("QUIZ_HTTP_ADDR", defaultHTTPAddr),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
