package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// General
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP server
	HTTPListenAddr  string        `envconfig:"HTTP_LISTEN_ADDR" default:":5000"`
	CORSOrigins     string        `envconfig:"CORS_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Rate limiting (per client IP)
	RateLimitRPS   int `envconfig:"RATE_LIMIT_RPS" default:"100"`
	RateLimitBurst int `envconfig:"RATE_LIMIT_BURST" default:"200"`

	// Prediction model artifacts. Loading failures are non-fatal: the server
	// starts without a predictor and /api/predict reports the failure.
	ModelPath  string `envconfig:"MODEL_PATH" default:"model/habit_model.json"`
	ScalerPath string `envconfig:"SCALER_PATH" default:"model/scaler.json"`

	// Leaderboard seed file (optional — built-in mock data when empty)
	LeaderboardPath string `envconfig:"LEADERBOARD_PATH"`

	// Completion history
	HistoryMaxDays int `envconfig:"HISTORY_MAX_DAYS" default:"365"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// LoadWithPrefix reads configuration with a prefix.
func LoadWithPrefix(prefix string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config with prefix %s: %w", prefix, err)
	}
	return &cfg, nil
}
