package blob_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobService_DeleteBlob_RemovesRecordAndChunks(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, uow, chunks := newTestService(t)

	payload := randomBytes(t, 2*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	// Act
	err = service.DeleteBlob(ctx, uploaded.ID)

	// Assert
	require.NoError(t, err)
	_, err = uow.BlobRepo().FindByID(ctx, uploaded.ID)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	ids, err := chunks.ListBlobIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBlobService_DeleteBlob_IsIdempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	require.NoError(t, service.DeleteBlob(ctx, uploaded.ID))

	// Act
	err = service.DeleteBlob(ctx, uploaded.ID)

	// Assert: repeating the delete is a no-op, not a failure.
	assert.NoError(t, err)
}

func TestBlobService_DeleteBlob_RacingOpenStream(t *testing.T) {
	// Arrange: a reader is mid-download when the delete lands. Nothing
	// fences that window; the registry record goes first, so new readers
	// see not-found while the open stream runs into missing chunks.
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, 3*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	_, stream, err := service.OpenRead(ctx, uploaded.ID)
	require.NoError(t, err)
	defer stream.Close()

	head := make([]byte, testChunkSize)
	_, err = io.ReadFull(stream, head)
	require.NoError(t, err)
	assert.Equal(t, payload[:testChunkSize], head)

	// Act
	require.NoError(t, service.DeleteBlob(ctx, uploaded.ID))

	// Assert: a fresh open is a clean not-found; the stream that already
	// passed the registry lookup fails with corruption, never with a
	// silent early EOF.
	_, _, err = service.OpenRead(ctx, uploaded.ID)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	_, err = io.ReadAll(stream)
	assert.ErrorIs(t, err, domain.ErrCorruptBlob)
}

func TestBlobService_DeleteBlob_UnknownBlob(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	// Act
	err := service.DeleteBlob(ctx, uuid.New())

	// Assert
	assert.NoError(t, err)
}
