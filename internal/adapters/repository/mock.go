package repository

import (
	"context"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBlobRepository struct {
	mock.Mock
}

func NewMockBlobRepository() *MockBlobRepository {
	return &MockBlobRepository{}
}

func (m *MockBlobRepository) Create(ctx context.Context, blob domain.Blob) error {
	args := m.Called(ctx, blob)
	return args.Error(0)
}

func (m *MockBlobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Blob, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Blob), args.Error(1)
}

func (m *MockBlobRepository) Finalize(ctx context.Context, id uuid.UUID, sizeBytes int64, chunkSize int) error {
	args := m.Called(ctx, id, sizeBytes, chunkSize)
	return args.Error(0)
}

func (m *MockBlobRepository) Touch(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlobRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.Blob, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).([]domain.Blob), args.Error(1)
}

type MockAssetRepository struct {
	mock.Mock
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{}
}

func (m *MockAssetRepository) Create(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	blobRepo  *MockBlobRepository
	assetRepo *MockAssetRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		blobRepo:  &MockBlobRepository{},
		assetRepo: &MockAssetRepository{},
	}
}

func (m *MockUnitOfWork) BlobRepo() port.BlobRepository {
	return m.blobRepo
}

func (m *MockUnitOfWork) AssetRepo() port.AssetRepository {
	return m.assetRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetBlobRepoMock() *MockBlobRepository {
	return m.blobRepo
}

func (m *MockUnitOfWork) GetAssetRepoMock() *MockAssetRepository {
	return m.assetRepo
}
