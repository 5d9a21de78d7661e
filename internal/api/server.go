package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/p-blackswan/habitd/internal/metrics"
	"github.com/p-blackswan/habitd/internal/requestid"
)

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	ListenAddr  string
	CORSOrigins string
	RateLimit   RateLimitConfig
}

// Server is the habitd Fiber application.
type Server struct {
	app      *fiber.App
	handlers *Handlers
	logger   zerolog.Logger
	config   ServerConfig
}

// NewServer creates and configures the API server.
func NewServer(cfg ServerConfig, handlers *Handlers, m *metrics.Metrics, logger zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(logger),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadBufferSize:        8192,
		WriteBufferSize:       8192,
	})

	s := &Server{
		app:      app,
		handlers: handlers,
		logger:   logger.With().Str("component", "api_server").Logger(),
		config:   cfg,
	}

	s.setupMiddleware(cfg, m, logger)
	s.setupRoutes(handlers, m)

	return s
}

func (s *Server) setupMiddleware(cfg ServerConfig, m *metrics.Metrics, logger zerolog.Logger) {
	// Recovery middleware
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Request ID middleware
	s.app.Use(func(c *fiber.Ctx) error {
		_, reqID := requestid.New(c.Context())
		c.Set("X-Request-ID", reqID)
		c.Locals("request_id", reqID)
		return c.Next()
	})

	// CORS middleware
	if cfg.CORSOrigins != "" {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}

	// Rate limiter
	if cfg.RateLimit.RPS > 0 {
		s.app.Use(NewRateLimitMiddleware(cfg.RateLimit))
	}

	// Request metrics + audit logging
	s.app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		// Skip noisy probe logging
		if path == "/healthz" || path == "/readyz" || path == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		if m != nil {
			m.RecordRequest(c.Route().Path, c.Method(), strconv.Itoa(c.Response().StatusCode()))
			m.ObserveDuration(c.Route().Path, time.Since(start).Seconds())
		}

		logger.Info().
			Str("method", c.Method()).
			Str("path", path).
			Int("status", c.Response().StatusCode()).
			Str("ip", c.IP()).
			Str("request_id", fmt.Sprintf("%v", c.Locals("request_id"))).
			Dur("duration", time.Since(start)).
			Msg("api request")

		return err
	})
}

func (s *Server) setupRoutes(h *Handlers, m *metrics.Metrics) {
	// Probe endpoints
	s.app.Get("/healthz", h.Liveness)
	s.app.Get("/readyz", h.Readiness)

	// Prometheus metrics
	if m != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	api := s.app.Group("/api")

	// Habits
	api.Get("/habits", h.ListHabits)
	api.Post("/habits", h.CreateHabit)
	api.Delete("/habits/:id", h.DeleteHabit)

	// Completions
	api.Post("/completions", h.RecordCompletion)
	api.Get("/completions/today", h.TodayCompletions)
	api.Get("/completions/history", h.CompletionHistory)

	// Stats & leaderboard
	api.Get("/stats", h.GetStats)
	api.Get("/leaderboard", h.GetLeaderboard)

	// Prediction
	api.Post("/predict", h.Predict)

	// Health (public API variant of the probes)
	api.Get("/health", h.APIHealth)
}

// Start starts the server. Blocks until stopped.
func (s *Server) Start() error {
	addr := s.config.ListenAddr
	if addr == "" {
		addr = ":5000"
	}

	s.logger.Info().Str("addr", addr).Msg("API server starting")
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.logger.Info().Msg("API server shutting down")
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error().
			Err(err).
			Int("status", code).
			Str("path", c.Path()).
			Str("method", c.Method()).
			Msg("unhandled error")

		return failResponse(c, code, err.Error())
	}
}
