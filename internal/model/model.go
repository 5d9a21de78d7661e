// Package model loads the pre-trained performance regression artifacts and
// exposes them as an opaque predictor.
//
// Two JSON artifacts are expected on disk: the model itself (feature names in
// training order, one coefficient per feature, an intercept) and the input
// scaler (per-feature mean and scale). Inputs are standardized with the scaler
// before the linear combination is applied, mirroring how the model was
// trained.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	apperrors "github.com/p-blackswan/habitd/internal/errors"
)

type modelArtifact struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type scalerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Model is the loaded regressor plus its input scaler.
type Model struct {
	coefficients []float64
	intercept    float64
	mean         []float64
	scale        []float64
	logger       zerolog.Logger
}

// Load reads and validates both artifacts. featureNames is the canonical
// feature order the caller will build vectors in; the model artifact must
// declare exactly the same names in the same order, since the vector is
// positional.
func Load(modelPath, scalerPath string, featureNames []string, logger zerolog.Logger) (*Model, error) {
	var ma modelArtifact
	if err := readArtifact(modelPath, &ma); err != nil {
		return nil, err
	}

	var sa scalerArtifact
	if err := readArtifact(scalerPath, &sa); err != nil {
		return nil, err
	}

	n := len(featureNames)
	if len(ma.FeatureNames) != n || len(ma.Coefficients) != n {
		return nil, apperrors.NewArtifactError(modelPath, "validate",
			fmt.Errorf("expected %d features, got %d names and %d coefficients",
				n, len(ma.FeatureNames), len(ma.Coefficients)))
	}
	for i, name := range featureNames {
		if ma.FeatureNames[i] != name {
			return nil, apperrors.NewArtifactError(modelPath, "validate",
				fmt.Errorf("feature %d is %q, expected %q", i, ma.FeatureNames[i], name))
		}
	}

	if len(sa.Mean) != n || len(sa.Scale) != n {
		return nil, apperrors.NewArtifactError(scalerPath, "validate",
			fmt.Errorf("expected %d entries, got %d means and %d scales",
				n, len(sa.Mean), len(sa.Scale)))
	}
	for i, s := range sa.Scale {
		if s == 0 {
			return nil, apperrors.NewArtifactError(scalerPath, "validate",
				fmt.Errorf("scale[%d] is zero", i))
		}
	}

	m := &Model{
		coefficients: ma.Coefficients,
		intercept:    ma.Intercept,
		mean:         sa.Mean,
		scale:        sa.Scale,
		logger:       logger.With().Str("component", "model").Logger(),
	}

	m.logger.Info().
		Str("model_path", modelPath).
		Str("scaler_path", scalerPath).
		Int("features", n).
		Msg("prediction model loaded")

	return m, nil
}

// Predict standardizes the vector and applies the regression. The vector must
// be in the canonical feature order the model was loaded with.
func (m *Model) Predict(vector []float64) (float64, error) {
	if len(vector) != len(m.coefficients) {
		return 0, fmt.Errorf("%w: vector has %d features, model expects %d",
			apperrors.ErrInvalidInput, len(vector), len(m.coefficients))
	}

	score := m.intercept
	for i, v := range vector {
		score += m.coefficients[i] * (v - m.mean[i]) / m.scale[i]
	}
	return score, nil
}

func readArtifact(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewArtifactError(path, "read", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewArtifactError(path, "decode", err)
	}
	return nil
}
