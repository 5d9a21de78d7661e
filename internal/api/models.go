// Package api provides the HTTP surface of habitd.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/p-blackswan/habitd/internal/habit"
	"github.com/p-blackswan/habitd/internal/leaderboard"
	"github.com/p-blackswan/habitd/internal/prediction"
)

// Every endpoint responds with a success envelope; clients branch on the
// success flag rather than the transport status alone.

// --- Request DTOs ---

// CreateHabitRequest is the payload for POST /api/habits.
type CreateHabitRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// RecordCompletionRequest is the payload for POST /api/completions.
// Completed defaults to true when omitted; Date defaults to today.
type RecordCompletionRequest struct {
	HabitID   *int   `json:"habit_id"`
	Date      string `json:"date,omitempty"`
	Completed *bool  `json:"completed,omitempty"`
}

// --- Response DTOs ---

// HabitListResponse is the response for GET /api/habits.
type HabitListResponse struct {
	Success bool          `json:"success"`
	Habits  []habit.Habit `json:"habits"`
}

// HabitResponse wraps a single habit.
type HabitResponse struct {
	Success bool        `json:"success"`
	Habit   habit.Habit `json:"habit"`
}

// CompletionResponse wraps a recorded completion.
type CompletionResponse struct {
	Success    bool             `json:"success"`
	Completion habit.Completion `json:"completion"`
}

// TodayResponse is the response for GET /api/completions/today.
type TodayResponse struct {
	Success     bool               `json:"success"`
	Completions []habit.Completion `json:"completions"`
	Date        string             `json:"date"`
}

// HistoryResponse is the response for GET /api/completions/history.
type HistoryResponse struct {
	Success bool               `json:"success"`
	History []habit.DayHistory `json:"history"`
}

// StatsResponse is the response for GET /api/stats.
type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   habit.Stats `json:"stats"`
}

// LeaderboardResponse is the response for GET /api/leaderboard.
type LeaderboardResponse struct {
	Success     bool                `json:"success"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

// PredictionResponse is the response for POST /api/predict.
type PredictionResponse struct {
	Success    bool              `json:"success"`
	Prediction prediction.Result `json:"prediction"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Success     bool      `json:"success"`
	Status      string    `json:"status"`
	ModelLoaded bool      `json:"model_loaded"`
	HabitsCount int       `json:"habits_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// FailureResponse is the uniform error envelope.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// failResponse writes the uniform failure envelope.
func failResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(FailureResponse{Success: false, Message: message})
}
