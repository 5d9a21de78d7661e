package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-blackswan/habitd/internal/habit"
	"github.com/p-blackswan/habitd/internal/health"
	"github.com/p-blackswan/habitd/internal/leaderboard"
	"github.com/p-blackswan/habitd/internal/metrics"
	"github.com/p-blackswan/habitd/internal/prediction"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type stubPredictor struct {
	score float64
}

func (s *stubPredictor) Predict(vector []float64) (float64, error) {
	return s.score, nil
}

type testEnv struct {
	app         *fiber.App
	habits      *habit.Store
	completions *habit.Log
}

// testApp wires a Fiber app with a fixed clock and the given predictor
// (nil simulates failed artifact loading).
func testApp(t *testing.T, predictor prediction.Predictor) testEnv {
	t.Helper()
	logger := zerolog.Nop()
	clock := func() time.Time { return testNow }

	habits := habit.NewStore(logger, habit.WithClock(clock))
	completions := habit.NewLog(habits, logger, habit.WithClock(clock))
	stats := habit.NewEngine(habits, completions, habit.WithClock(clock))
	predictions := prediction.NewService(predictor, prediction.NewAuditLog(), logger,
		prediction.WithClock(clock))

	handlers := NewHandlers(HandlerConfig{
		Habits:         habits,
		Completions:    completions,
		Stats:          stats,
		Predictions:    predictions,
		Ranking:        leaderboard.New(),
		Checker:        health.NewChecker(logger),
		Metrics:        metrics.New(),
		HistoryMaxDays: 365,
		Now:            clock,
	}, logger)

	srv := NewServer(ServerConfig{
		ListenAddr:  ":0",
		CORSOrigins: "*",
		RateLimit:   RateLimitConfig{RPS: 100, Burst: 200},
	}, handlers, nil, logger)

	return testEnv{app: srv.App(), habits: habits, completions: completions}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_Healthz(t *testing.T) {
	env := testApp(t, &stubPredictor{score: 50})

	resp := doJSON(t, env.app, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Readyz(t *testing.T) {
	env := testApp(t, &stubPredictor{score: 50})

	resp := doJSON(t, env.app, "GET", "/readyz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	env := testApp(t, &stubPredictor{score: 50})

	resp := doJSON(t, env.app, "GET", "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode[FailureResponse](t, resp)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func TestServer_RequestIDHeader(t *testing.T) {
	env := testApp(t, &stubPredictor{score: 50})

	resp := doJSON(t, env.app, "GET", "/api/habits", "")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
