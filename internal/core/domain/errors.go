package domain

import "errors"

// ============================================================================
// Model Service Errors
// ============================================================================

// Availability errors
var (
	ErrModelNotLoaded = errors.New("model not loaded")
)

// Validation errors
var (
	ErrNegativeYears = errors.New("years of experience cannot be negative")
)

// Artifact errors
var (
	ErrArtifactNotFound = errors.New("model artifact not found")
	ErrInvalidArtifact  = errors.New("invalid model artifact")
)

// Prediction errors
var (
	ErrPredictionFailed = errors.New("prediction failed")
)

// ============================================================================
// Deployment Errors
// ============================================================================

var (
	ErrMissingAPIKey  = errors.New("RENDER_API_KEY environment variable not set")
	ErrOwnerNotFound  = errors.New("no owner found for API key")
	ErrServiceExists  = errors.New("service already exists")
	ErrInvalidService = errors.New("service name and repo are required")
)
