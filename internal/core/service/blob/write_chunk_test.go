package blob_test

import (
	"context"
	"testing"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobService_WriteChunk_RejectsSequenceGap(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	require.NoError(t, service.WriteChunk(ctx, blobID, 0, randomBytes(t, testChunkSize)))

	// Act: skip sequence 1.
	err = service.WriteChunk(ctx, blobID, 2, randomBytes(t, testChunkSize))

	// Assert
	assert.ErrorIs(t, err, domain.ErrChunkSequence)
}

func TestBlobService_WriteChunk_RejectsDuplicateSequence(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	require.NoError(t, service.WriteChunk(ctx, blobID, 0, randomBytes(t, testChunkSize)))

	// Act
	err = service.WriteChunk(ctx, blobID, 0, randomBytes(t, testChunkSize))

	// Assert
	assert.ErrorIs(t, err, domain.ErrChunkSequence)
}

func TestBlobService_WriteChunk_RejectsFinalizedBlob(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	require.NoError(t, service.WriteChunk(ctx, blobID, 0, randomBytes(t, 10)))
	require.NoError(t, service.CompleteUpload(ctx, blobID, 10))

	// Act
	err = service.WriteChunk(ctx, blobID, 1, randomBytes(t, 10))

	// Assert
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
}

func TestBlobService_WriteChunk_RejectsUnknownBlob(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	// Act
	err := service.WriteChunk(ctx, uuid.New(), 0, randomBytes(t, 10))

	// Assert
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobService_WriteChunk_RefreshesUpdatedAt(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, uow, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	before, err := uow.BlobRepo().FindByID(ctx, blobID)
	require.NoError(t, err)

	// Act
	require.NoError(t, service.WriteChunk(ctx, blobID, 0, randomBytes(t, testChunkSize)))

	// Assert
	after, err := uow.BlobRepo().FindByID(ctx, blobID)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}
