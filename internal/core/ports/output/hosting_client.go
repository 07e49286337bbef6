package ports

import (
	"context"

	"salary-prediction-api/internal/core/domain"
)

// HostingClient defines the contract for the hosting provider management API
type HostingClient interface {
	ListOwners(ctx context.Context) ([]domain.Owner, error)
	// ListServices returns services whose name matches; an empty name lists all.
	ListServices(ctx context.Context, name string) ([]domain.Service, error)
	CreateService(ctx context.Context, spec *domain.ServiceSpec) (*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
}
