package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"salary-prediction-api/internal/config"
	"salary-prediction-api/internal/core/domain"
	ports "salary-prediction-api/internal/core/ports/output"
	"salary-prediction-api/internal/metrics"
)

const defaultHighYearsThreshold = 50

// PredictionService serves predictions from a model loaded once at
// construction. Its fields are never written after NewPredictionService
// returns, so handlers share it without locking.
type PredictionService struct {
	model     ports.Predictor
	loadErr   error
	modelPath string
	highYears float64
	artifacts ports.ArtifactStore
}

// NewPredictionService loads the model artifact at cfg.Path. A failed load is
// recorded and the service starts without a model.
func NewPredictionService(ctx context.Context, artifacts ports.ArtifactStore, cfg config.ModelConfig) *PredictionService {
	threshold := cfg.HighYearsThreshold
	if threshold <= 0 {
		threshold = defaultHighYearsThreshold
	}

	s := &PredictionService{
		modelPath: cfg.Path,
		highYears: threshold,
		artifacts: artifacts,
	}

	model, err := artifacts.Load(ctx, cfg.Path)
	if err == nil && model == nil {
		err = domain.ErrInvalidArtifact
	}
	if err != nil {
		s.loadErr = err
		log.WithError(err).WithField("model_path", cfg.Path).Error("model load failed, serving without a model")
		metrics.SetModelLoaded(false)
		return s
	}

	s.model = model
	log.WithField("model_path", cfg.Path).Info("model loaded")
	metrics.SetModelLoaded(true)
	return s
}

// NewPredictionServiceWithModel skips the artifact store and wires the given
// predictor directly. It is the injection point for tests; the server always
// goes through NewPredictionService. A nil predictor yields a service without
// a model.
func NewPredictionServiceWithModel(model ports.Predictor, artifacts ports.ArtifactStore, cfg config.ModelConfig) *PredictionService {
	threshold := cfg.HighYearsThreshold
	if threshold <= 0 {
		threshold = defaultHighYearsThreshold
	}
	s := &PredictionService{
		model:     model,
		modelPath: cfg.Path,
		highYears: threshold,
		artifacts: artifacts,
	}
	if model == nil {
		s.loadErr = domain.ErrModelNotLoaded
	}
	return s
}

func (s *PredictionService) ModelLoaded() bool {
	return s.model != nil
}

// Status reports liveness; it never fails on a missing model.
func (s *PredictionService) Status() domain.ServiceStatus {
	if s.model == nil {
		status := domain.ServiceStatus{
			Message:     "API is running, but the model is not loaded",
			ModelLoaded: false,
			Status:      domain.StatusDegraded,
		}
		if s.loadErr != nil {
			status.LoadError = s.loadErr.Error()
		}
		return status
	}

	return domain.ServiceStatus{
		Message:     "API is running",
		ModelLoaded: true,
		Status:      domain.StatusHealthy,
	}
}

// Health reports model state and whether the artifact is on disk. It returns
// ErrModelNotLoaded alongside the report when the model is unset.
func (s *PredictionService) Health(_ context.Context) (*domain.HealthReport, error) {
	report := &domain.HealthReport{
		Status:      domain.StatusHealthy,
		ModelLoaded: s.model != nil,
		ModelPath:   s.modelPath,
		ModelExists: s.artifacts != nil && s.artifacts.Exists(s.modelPath),
	}

	if s.model == nil {
		report.Status = domain.StatusUnhealthy
		return report, domain.ErrModelNotLoaded
	}
	return report, nil
}

func (s *PredictionService) Predict(ctx context.Context, years float64) (*domain.Prediction, error) {
	if s.model == nil {
		metrics.ObservePrediction(metrics.OutcomeModelUnavailable)
		return nil, domain.ErrModelNotLoaded
	}

	if years < 0 {
		metrics.ObservePrediction(metrics.OutcomeInvalidInput)
		return nil, domain.ErrNegativeYears
	}

	highYears := years > s.highYears
	if highYears {
		log.WithFields(log.Fields{
			"years":     years,
			"threshold": s.highYears,
		}).Warn("unusually high years of experience")
		metrics.ObserveHighYears()
	}

	if err := ctx.Err(); err != nil {
		metrics.ObservePrediction(metrics.OutcomeError)
		return nil, err
	}

	salary, err := s.model.Predict(years)
	if err != nil {
		metrics.ObservePrediction(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}

	metrics.ObservePrediction(metrics.OutcomeSuccess)
	return &domain.Prediction{
		YearsExperience: years,
		PredictedSalary: salary,
		HighYears:       highYears,
	}, nil
}
