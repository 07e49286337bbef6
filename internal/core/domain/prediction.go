package domain

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
	StatusSuccess   = "success"
)

// Prediction is the result of evaluating the model on one input.
type Prediction struct {
	YearsExperience float64
	PredictedSalary float64
	HighYears       bool
}

// ServiceStatus backs the liveness probe.
type ServiceStatus struct {
	Message     string
	ModelLoaded bool
	Status      string
	LoadError   string
}

// HealthReport backs the health check.
type HealthReport struct {
	Status      string
	ModelLoaded bool
	ModelPath   string
	ModelExists bool
}
