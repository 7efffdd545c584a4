package blob_test

import (
	"context"
	"testing"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobService_AbortUpload_LeavesNoTrace(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, uow, chunks := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	for sequence := 0; sequence < 4; sequence++ {
		require.NoError(t, service.WriteChunk(ctx, blobID, sequence, randomBytes(t, testChunkSize)))
	}

	// Act
	err = service.AbortUpload(ctx, blobID)

	// Assert
	require.NoError(t, err)
	_, err = uow.BlobRepo().FindByID(ctx, blobID)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	ids, err := chunks.ListBlobIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBlobService_AbortUpload_BeforeAnyChunk(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, uow, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "image/png", "cover.png", nil)
	require.NoError(t, err)

	// Act
	err = service.AbortUpload(ctx, blobID)

	// Assert
	require.NoError(t, err)
	_, err = uow.BlobRepo().FindByID(ctx, blobID)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}
