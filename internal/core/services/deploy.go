package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"salary-prediction-api/internal/config"
	"salary-prediction-api/internal/core/domain"
	output "salary-prediction-api/internal/core/ports/output"
)

type DeployService struct {
	hosting  output.HostingClient
	urlDelay time.Duration
}

func NewDeployService(hosting output.HostingClient, urlDelay time.Duration) *DeployService {
	return &DeployService{
		hosting:  hosting,
		urlDelay: urlDelay,
	}
}

// ServiceSpecFromConfig builds the web-service creation payload. OwnerID is
// filled in by Deploy.
func ServiceSpecFromConfig(cfg *config.RenderConfig) *domain.ServiceSpec {
	return &domain.ServiceSpec{
		Type:         "web_service",
		Name:         cfg.ServiceName,
		Repo:         cfg.Repo,
		Branch:       cfg.Branch,
		Runtime:      cfg.Runtime,
		BuildCommand: cfg.BuildCommand,
		StartCommand: cfg.StartCommand,
		PlanID:       cfg.Plan,
		Region:       cfg.Region,
		EnvVars: []domain.EnvVar{
			{Key: "LOGGER_FORMAT", Value: "json"},
			{Key: "MODEL_PATH", Value: "salary_model.json"},
		},
	}
}

func (s *DeployService) Deploy(ctx context.Context, spec *domain.ServiceSpec) (*domain.DeployResult, error) {
	if spec.Name == "" || spec.Repo == "" {
		return nil, domain.ErrInvalidService
	}

	// 1. Resolve owner
	owners, err := s.hosting.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("get owner id: %w", err)
	}
	if len(owners) == 0 {
		return nil, domain.ErrOwnerNotFound
	}
	ownerID := owners[0].ID
	log.WithField("owner_id", ownerID).Info("resolved owner")

	result := &domain.DeployResult{
		OwnerID:     ownerID,
		ServiceName: spec.Name,
	}

	// 2. Existing service short-circuits creation
	existing, err := s.findService(ctx, spec.Name)
	if err != nil {
		log.WithError(err).Warn("could not check existing services")
	}
	if existing != nil {
		result.Existing = true
		result.ServiceID = existing.ID
		result.DashboardURL = existing.DashboardURL
		result.URL = s.serviceURL(ctx, existing.ID)
		return result, nil
	}

	// 3. Create
	req := *spec
	req.OwnerID = ownerID
	created, err := s.hosting.CreateService(ctx, &req)
	if err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("create service: empty service id in response")
	}
	result.ServiceID = created.ID
	result.DashboardURL = created.DashboardURL
	log.WithField("service_id", created.ID).Info("service created")

	// 4. URL is usually assigned a moment after creation
	if s.urlDelay > 0 {
		select {
		case <-ctx.Done():
			return result, nil
		case <-time.After(s.urlDelay):
		}
	}
	result.URL = s.serviceURL(ctx, created.ID)

	return result, nil
}

func (s *DeployService) findService(ctx context.Context, name string) (*domain.Service, error) {
	services, err := s.hosting.ListServices(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].Name == name {
			return &services[i], nil
		}
	}
	return nil, nil
}

// serviceURL is best-effort; failures are logged and yield "".
func (s *DeployService) serviceURL(ctx context.Context, id string) string {
	svc, err := s.hosting.GetService(ctx, id)
	if err != nil {
		log.WithError(err).WithField("service_id", id).Warn("could not get service url")
		return ""
	}
	return svc.ServiceDetails.URL
}
