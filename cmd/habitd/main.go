package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/p-blackswan/habitd/internal/api"
	"github.com/p-blackswan/habitd/internal/config"
	"github.com/p-blackswan/habitd/internal/habit"
	"github.com/p-blackswan/habitd/internal/health"
	"github.com/p-blackswan/habitd/internal/leaderboard"
	"github.com/p-blackswan/habitd/internal/metrics"
	"github.com/p-blackswan/habitd/internal/model"
	"github.com/p-blackswan/habitd/internal/prediction"
)

func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	if os.Getenv("ENVIRONMENT") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = logger

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}

	logger.Info().
		Str("environment", cfg.Environment).
		Str("listen_addr", cfg.HTTPListenAddr).
		Str("model_path", cfg.ModelPath).
		Msg("starting habitd")

	// Load prediction model (non-fatal — /api/predict degrades, rest serves)
	var predictor prediction.Predictor
	m, err := model.Load(cfg.ModelPath, cfg.ScalerPath, prediction.FeatureNames, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load prediction model (non-fatal)")
	} else {
		predictor = m
	}

	// Leaderboard (seed file optional)
	ranking := leaderboard.New()
	if cfg.LeaderboardPath != "" {
		seeded, lbErr := leaderboard.LoadFile(cfg.LeaderboardPath)
		if lbErr != nil {
			logger.Warn().Err(lbErr).Msg("failed to load leaderboard seed; using built-in data")
		} else {
			ranking = seeded
		}
	}

	// Repositories and derived services
	habits := habit.NewStore(logger)
	completions := habit.NewLog(habits, logger)
	stats := habit.NewEngine(habits, completions)

	collector := metrics.New()
	predictions := prediction.NewService(predictor, prediction.NewAuditLog(), logger)

	// Health checker
	checker := health.NewChecker(logger)
	checker.Register("model", func(ctx context.Context) health.Status {
		if predictions.Available() {
			return health.StatusOK
		}
		return health.StatusDegraded
	})

	handlers := api.NewHandlers(api.HandlerConfig{
		Habits:         habits,
		Completions:    completions,
		Stats:          stats,
		Predictions:    predictions,
		Ranking:        ranking,
		Checker:        checker,
		Metrics:        collector,
		HistoryMaxDays: cfg.HistoryMaxDays,
	}, logger)

	server := api.NewServer(api.ServerConfig{
		ListenAddr:  cfg.HTTPListenAddr,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit: api.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
	}, handlers, collector, logger)

	// Start HTTP server
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownDone := make(chan struct{})
	go func() {
		if err := server.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("API server shutdown error")
		}
		close(shutdownDone)
	}()

	select {
	case <-shutdownDone:
		logger.Info().Msg("habitd stopped")
	case <-time.After(cfg.ShutdownTimeout):
		logger.Warn().Msg("forced shutdown after timeout")
	}
}
