package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salary-prediction-api/internal/core/domain"
)

// MockPredictor is a mock of Predictor.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(x float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Load(ctx context.Context, path string) (*domain.LinearModel, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinearModel), args.Error(1)
}

func (m *MockArtifactStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

// MockHostingClient is a mock of HostingClient.
type MockHostingClient struct {
	mock.Mock
}

func (m *MockHostingClient) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Owner), args.Error(1)
}

func (m *MockHostingClient) ListServices(ctx context.Context, name string) ([]domain.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockHostingClient) CreateService(ctx context.Context, spec *domain.ServiceSpec) (*domain.Service, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockHostingClient) GetService(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
