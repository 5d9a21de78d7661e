package prediction

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/p-blackswan/habitd/internal/errors"
)

// Predictor is the opaque regression model. The concrete implementation lives
// in internal/model; tests use stubs.
type Predictor interface {
	Predict(vector []float64) (float64, error)
}

// Result is the interpreted prediction returned to clients. Score is rounded
// for display; the raw value goes to the audit log.
type Result struct {
	Score          int    `json:"score"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

// Service runs the full pipeline: input → feature vector → model → category.
type Service struct {
	predictor Predictor
	audit     *AuditLog
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a prediction service. predictor may be nil when the model
// artifacts failed to load; Predict then fails with ErrModelUnavailable while
// the rest of the API keeps serving.
func NewService(predictor Predictor, audit *AuditLog, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		predictor: predictor,
		audit:     audit,
		now:       time.Now,
		logger:    logger.With().Str("component", "prediction").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether the model is loaded.
func (s *Service) Available() bool {
	return s.predictor != nil
}

// Predict scores the input and interprets the result.
func (s *Service) Predict(in Input) (Result, error) {
	if s.predictor == nil {
		return Result{}, apperrors.ErrModelUnavailable
	}

	raw, err := s.predictor.Predict(in.Vector())
	if err != nil {
		return Result{}, err
	}

	s.audit.Append(Record{
		HabitID:    in.HabitID,
		Timestamp:  s.now().UTC(),
		Prediction: raw,
	})

	category, recommendation := Interpret(raw)

	s.logger.Info().
		Float64("raw_score", raw).
		Str("category", category).
		Msg("prediction served")

	return Result{
		Score:          int(math.Round(raw)),
		Category:       category,
		Recommendation: recommendation,
	}, nil
}
