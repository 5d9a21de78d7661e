// Package metrics provides Prometheus metrics for habitd.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	PredictionsTotal *prometheus.CounterVec
	HabitsActive     prometheus.Gauge
	ErrorsTotal      *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "habitd_requests_total",
				Help: "Total number of HTTP requests by path, method and status.",
			},
			[]string{"path", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "habitd_request_duration_seconds",
				Help:    "Request processing duration by path.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "habitd_predictions_total",
				Help: "Total performance predictions served by result category.",
			},
			[]string{"category"},
		),
		HabitsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "habitd_habits_active",
				Help: "Number of habits currently tracked.",
			},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "habitd_errors_total",
				Help: "Total errors by module and type.",
			},
			[]string{"module", "type"},
		),
		registry: reg,
	}

	reg.MustRegister(m.RequestsTotal)
	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(m.PredictionsTotal)
	reg.MustRegister(m.HabitsActive)
	reg.MustRegister(m.ErrorsTotal)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest increments the request counter.
func (m *Metrics) RecordRequest(path, method, status string) {
	m.RequestsTotal.WithLabelValues(path, method, status).Inc()
}

// ObserveDuration records request duration.
func (m *Metrics) ObserveDuration(path string, seconds float64) {
	m.RequestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordPrediction increments the prediction counter for a category.
func (m *Metrics) RecordPrediction(category string) {
	m.PredictionsTotal.WithLabelValues(category).Inc()
}

// SetHabitsActive sets the tracked habit count.
func (m *Metrics) SetHabitsActive(count float64) {
	m.HabitsActive.Set(count)
}

// RecordError increments the error counter.
func (m *Metrics) RecordError(module, errType string) {
	m.ErrorsTotal.WithLabelValues(module, errType).Inc()
}
