package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Exposition(t *testing.T) {
	m := New()

	m.RecordRequest("/api/habits", "GET", "200")
	m.RecordRequest("/api/habits", "GET", "200")
	m.RecordPrediction("Excellent")
	m.SetHabitsActive(3)
	m.RecordError("model", "artifact_load")
	m.ObserveDuration("/api/stats", 0.012)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `habitd_requests_total{method="GET",path="/api/habits",status="200"} 2`)
	assert.Contains(t, out, `habitd_predictions_total{category="Excellent"} 1`)
	assert.Contains(t, out, "habitd_habits_active 3")
	assert.Contains(t, out, `habitd_errors_total{module="model",type="artifact_load"} 1`)
}

func TestMetrics_IsolatedRegistries(t *testing.T) {
	// Each New() uses a private registry so tests don't collide.
	a := New()
	b := New()
	a.RecordPrediction("Good")

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.NotContains(t, string(body), `category="Good"`)
}
