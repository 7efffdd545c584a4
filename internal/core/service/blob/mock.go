package blob

import (
	"context"
	"io"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBlobService is a mock implementation of BlobService
type MockBlobService struct {
	mock.Mock
}

// NewMockBlobService creates a new MockBlobService
func NewMockBlobService() *MockBlobService {
	return &MockBlobService{}
}

func (m *MockBlobService) BeginUpload(ctx context.Context, contentType, originalName string, tags map[string]string) (uuid.UUID, error) {
	args := m.Called(ctx, contentType, originalName, tags)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlobService) WriteChunk(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {
	args := m.Called(ctx, blobID, sequence, payload)
	return args.Error(0)
}

func (m *MockBlobService) CompleteUpload(ctx context.Context, blobID uuid.UUID, totalLength int64) error {
	args := m.Called(ctx, blobID, totalLength)
	return args.Error(0)
}

func (m *MockBlobService) AbortUpload(ctx context.Context, blobID uuid.UUID) error {
	args := m.Called(ctx, blobID)
	return args.Error(0)
}

func (m *MockBlobService) Upload(ctx context.Context, r io.Reader, contentType, originalName string, tags map[string]string) (*domain.Blob, error) {
	args := m.Called(ctx, r, contentType, originalName, tags)
	return args.Get(0).(*domain.Blob), args.Error(1)
}

func (m *MockBlobService) OpenRead(ctx context.Context, blobID uuid.UUID) (*domain.Blob, io.ReadCloser, error) {
	args := m.Called(ctx, blobID)
	return args.Get(0).(*domain.Blob), args.Get(1).(io.ReadCloser), args.Error(2)
}

func (m *MockBlobService) OpenReadRange(ctx context.Context, blobID uuid.UUID, offset, length int64) (*domain.Blob, io.ReadCloser, error) {
	args := m.Called(ctx, blobID, offset, length)
	return args.Get(0).(*domain.Blob), args.Get(1).(io.ReadCloser), args.Error(2)
}

func (m *MockBlobService) DeleteBlob(ctx context.Context, blobID uuid.UUID) error {
	args := m.Called(ctx, blobID)
	return args.Error(0)
}
