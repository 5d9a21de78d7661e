package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "github.com/p-blackswan/habitd/internal/errors"
	"github.com/p-blackswan/habitd/internal/habit"
	"github.com/p-blackswan/habitd/internal/health"
	"github.com/p-blackswan/habitd/internal/leaderboard"
	"github.com/p-blackswan/habitd/internal/metrics"
	"github.com/p-blackswan/habitd/internal/prediction"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	habits      *habit.Store
	completions *habit.Log
	stats       *habit.Engine
	predictions *prediction.Service
	ranking     *leaderboard.Leaderboard
	checker     *health.Checker
	metrics     *metrics.Metrics
	logger      zerolog.Logger
	now         func() time.Time

	historyMaxDays int
}

// HandlerConfig bundles the handler dependencies.
type HandlerConfig struct {
	Habits         *habit.Store
	Completions    *habit.Log
	Stats          *habit.Engine
	Predictions    *prediction.Service
	Ranking        *leaderboard.Leaderboard
	Checker        *health.Checker
	Metrics        *metrics.Metrics
	HistoryMaxDays int
	Now            func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg HandlerConfig, logger zerolog.Logger) *Handlers {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxDays := cfg.HistoryMaxDays
	if maxDays <= 0 {
		maxDays = 365
	}
	return &Handlers{
		habits:         cfg.Habits,
		completions:    cfg.Completions,
		stats:          cfg.Stats,
		predictions:    cfg.Predictions,
		ranking:        cfg.Ranking,
		checker:        cfg.Checker,
		metrics:        cfg.Metrics,
		logger:         logger.With().Str("component", "handlers").Logger(),
		now:            now,
		historyMaxDays: maxDays,
	}
}

// ListHabits handles GET /api/habits.
func (h *Handlers) ListHabits(c *fiber.Ctx) error {
	habits := h.habits.List()
	return c.JSON(HabitListResponse{Success: true, Habits: habits})
}

// CreateHabit handles POST /api/habits.
func (h *Handlers) CreateHabit(c *fiber.Ctx) error {
	var req CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return failResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if req.Name == "" {
		return failResponse(c, fiber.StatusBadRequest, "Habit name is required")
	}

	created := h.habits.Create(req.Name, req.Icon)
	if h.metrics != nil {
		h.metrics.SetHabitsActive(float64(h.habits.Count()))
	}

	return c.Status(fiber.StatusCreated).JSON(HabitResponse{Success: true, Habit: created})
}

// DeleteHabit handles DELETE /api/habits/:id. Deleting an unknown id succeeds
// silently, matching the store semantics.
func (h *Handlers) DeleteHabit(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return failResponse(c, fiber.StatusBadRequest, "Habit id must be an integer")
	}

	h.habits.Delete(id)
	if h.metrics != nil {
		h.metrics.SetHabitsActive(float64(h.habits.Count()))
	}

	return c.JSON(fiber.Map{"success": true})
}

// RecordCompletion handles POST /api/completions.
func (h *Handlers) RecordCompletion(c *fiber.Ctx) error {
	var req RecordCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return failResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if req.HabitID == nil {
		return failResponse(c, fiber.StatusBadRequest, "habit_id is required")
	}

	if req.Date != "" {
		if _, err := time.Parse(habit.DateFormat, req.Date); err != nil {
			return failResponse(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	completion := h.completions.Record(*req.HabitID, req.Date, completed)
	return c.Status(fiber.StatusCreated).JSON(CompletionResponse{Success: true, Completion: completion})
}

// TodayCompletions handles GET /api/completions/today.
func (h *Handlers) TodayCompletions(c *fiber.Ctx) error {
	completions, date := h.completions.Today()
	return c.JSON(TodayResponse{Success: true, Completions: completions, Date: date})
}

// CompletionHistory handles GET /api/completions/history.
func (h *Handlers) CompletionHistory(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 || days > h.historyMaxDays {
		return failResponse(c, fiber.StatusBadRequest,
			"days must be between 1 and "+strconv.Itoa(h.historyMaxDays))
	}

	return c.JSON(HistoryResponse{Success: true, History: h.completions.History(days)})
}

// GetStats handles GET /api/stats.
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{Success: true, Stats: h.stats.Summary()})
}

// GetLeaderboard handles GET /api/leaderboard.
func (h *Handlers) GetLeaderboard(c *fiber.Ctx) error {
	return c.JSON(LeaderboardResponse{Success: true, Leaderboard: h.ranking.Entries()})
}

// Predict handles POST /api/predict.
func (h *Handlers) Predict(c *fiber.Ctx) error {
	// An empty body is a valid request: every feature has a default.
	var input prediction.Input
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return failResponse(c, fiber.StatusBadRequest, "Invalid request body: "+err.Error())
		}
	}

	result, err := h.predictions.Predict(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrModelUnavailable) {
			if h.metrics != nil {
				h.metrics.RecordError("prediction", "model_unavailable")
			}
			return failResponse(c, fiber.StatusInternalServerError, "Model not loaded!")
		}
		h.logger.Error().Err(err).Msg("prediction failed")
		if h.metrics != nil {
			h.metrics.RecordError("prediction", "predict")
		}
		return failResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if h.metrics != nil {
		h.metrics.RecordPrediction(result.Category)
	}

	return c.JSON(PredictionResponse{Success: true, Prediction: result})
}

// APIHealth handles GET /api/health.
func (h *Handlers) APIHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Success:     true,
		Status:      "healthy",
		ModelLoaded: h.predictions.Available(),
		HabitsCount: h.habits.Count(),
		Timestamp:   h.now().UTC(),
	})
}

// Liveness handles GET /healthz.
func (h *Handlers) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness handles GET /readyz.
func (h *Handlers) Readiness(c *fiber.Ctx) error {
	if h.checker != nil && !h.checker.IsReady(c.Context()) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not_ready",
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
