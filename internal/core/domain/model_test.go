package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   LinearModel
		wantErr bool
	}{
		{"valid", LinearModel{ModelType: ModelTypeLinearRegression, Coefficients: []float64{9449.96}, Intercept: 25792.2}, false},
		{"type omitted", LinearModel{Coefficients: []float64{1}, Intercept: 0}, false},
		{"wrong type", LinearModel{ModelType: "random_forest", Coefficients: []float64{1}}, true},
		{"no coefficients", LinearModel{ModelType: ModelTypeLinearRegression}, true},
		{"two coefficients", LinearModel{Coefficients: []float64{1, 2}}, true},
		{"nan coefficient", LinearModel{Coefficients: []float64{math.NaN()}}, true},
		{"inf intercept", LinearModel{Coefficients: []float64{1}, Intercept: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArtifact)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinearModel_Predict(t *testing.T) {
	m := &LinearModel{Coefficients: []float64{9449.96}, Intercept: 25792.2}

	y, err := m.Predict(5)
	require.NoError(t, err)
	assert.InDelta(t, 73042.0, y, 1e-6)

	y, err = m.Predict(0)
	require.NoError(t, err)
	assert.Equal(t, 25792.2, y)
}

func TestLinearModel_PredictNonFinite(t *testing.T) {
	m := &LinearModel{Coefficients: []float64{math.MaxFloat64}, Intercept: 0}

	_, err := m.Predict(10)
	assert.Error(t, err)
}
