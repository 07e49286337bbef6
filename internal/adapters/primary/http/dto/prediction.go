package dto

import "salary-prediction-api/internal/core/domain"

// ============================================================================
// Request DTOs
// ============================================================================

// PredictRequest carries the single model feature. Years is a pointer so a
// missing field fails binding instead of predicting for zero.
type PredictRequest struct {
	Years *float64 `json:"years" binding:"required"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type PredictResponse struct {
	YearsExperience float64 `json:"years_experience"`
	PredictedSalary float64 `json:"predicted_salary"`
	Status          string  `json:"status"`
}

type StatusResponse struct {
	Message     string `json:"message"`
	ModelLoaded bool   `json:"model_loaded"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	ModelPath   string `json:"model_path"`
	ModelExists bool   `json:"model_exists"`
	Detail      string `json:"detail,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string       `json:"detail"`
	Error  string       `json:"error,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
	Trace  string       `json:"trace,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ToPredictResponse(p *domain.Prediction) PredictResponse {
	return PredictResponse{
		YearsExperience: p.YearsExperience,
		PredictedSalary: p.PredictedSalary,
		Status:          domain.StatusSuccess,
	}
}

func ToStatusResponse(s domain.ServiceStatus) StatusResponse {
	return StatusResponse{
		Message:     s.Message,
		ModelLoaded: s.ModelLoaded,
		Status:      s.Status,
		Error:       s.LoadError,
	}
}

func ToHealthResponse(r *domain.HealthReport) HealthResponse {
	return HealthResponse{
		Status:      r.Status,
		ModelLoaded: r.ModelLoaded,
		ModelPath:   r.ModelPath,
		ModelExists: r.ModelExists,
	}
}
