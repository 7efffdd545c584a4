package storage

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChunkStore is a mock implementation of ChunkStore
type MockChunkStore struct {
	mock.Mock
}

// NewMockChunkStore creates a new MockChunkStore
func NewMockChunkStore() *MockChunkStore {
	return &MockChunkStore{}
}

func (m *MockChunkStore) Put(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {
	args := m.Called(ctx, blobID, sequence, payload)
	return args.Error(0)
}

func (m *MockChunkStore) Get(ctx context.Context, blobID uuid.UUID, sequence int) ([]byte, error) {
	args := m.Called(ctx, blobID, sequence)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChunkStore) ListSequences(ctx context.Context, blobID uuid.UUID) ([]domain.ChunkRef, error) {
	args := m.Called(ctx, blobID)
	return args.Get(0).([]domain.ChunkRef), args.Error(1)
}

func (m *MockChunkStore) DeleteAll(ctx context.Context, blobID uuid.UUID) (int64, error) {
	args := m.Called(ctx, blobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChunkStore) ListBlobIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
