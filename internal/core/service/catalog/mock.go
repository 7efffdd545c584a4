package catalog

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

// NewMockCatalogService creates a new MockCatalogService
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

func (m *MockCatalogService) CreateAsset(ctx context.Context, title, artist string, durationSeconds *float64, audioBlobID, imageBlobID uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, title, artist, durationSeconds, audioBlobID, imageBlobID)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockCatalogService) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockCatalogService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockCatalogService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
