package domain

import (
	"fmt"
	"math"
)

const ModelTypeLinearRegression = "linear_regression"

// LinearModel is the deserialized form of a single-feature linear regression
// artifact. It is never mutated after Validate succeeds.
type LinearModel struct {
	ModelType    string    `json:"model_type"`
	Version      string    `json:"version,omitempty"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Validate checks that the model has exactly one finite coefficient and a
// finite intercept.
func (m *LinearModel) Validate() error {
	if m.ModelType != "" && m.ModelType != ModelTypeLinearRegression {
		return fmt.Errorf("%w: unsupported model type %q", ErrInvalidArtifact, m.ModelType)
	}
	if len(m.Coefficients) != 1 {
		return fmt.Errorf("%w: expected 1 coefficient, got %d", ErrInvalidArtifact, len(m.Coefficients))
	}
	if !isFinite(m.Coefficients[0]) || !isFinite(m.Intercept) {
		return fmt.Errorf("%w: non-finite parameters", ErrInvalidArtifact)
	}
	return nil
}

// Predict evaluates intercept + coefficient*x.
func (m *LinearModel) Predict(x float64) (float64, error) {
	y := m.Intercept + m.Coefficients[0]*x
	if !isFinite(y) {
		return 0, fmt.Errorf("non-finite output for input %v", x)
	}
	return y, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
