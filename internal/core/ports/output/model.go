package ports

import (
	"context"

	"salary-prediction-api/internal/core/domain"
)

// Predictor evaluates a loaded model on a single feature.
type Predictor interface {
	Predict(x float64) (float64, error)
}

// ArtifactStore defines the contract for reading model artifacts
type ArtifactStore interface {
	Load(ctx context.Context, path string) (*domain.LinearModel, error)
	Exists(path string) bool
}
