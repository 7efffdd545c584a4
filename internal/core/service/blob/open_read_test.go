package blob_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobService_OpenRead_HidesPendingBlob(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	blobID, err := service.BeginUpload(ctx, "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	require.NoError(t, service.WriteChunk(ctx, blobID, 0, randomBytes(t, testChunkSize)))

	// Act
	_, _, err = service.OpenRead(ctx, blobID)

	// Assert: a partial upload must look like it does not exist.
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobService_OpenRead_UnknownBlob(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	// Act
	_, _, err := service.OpenRead(ctx, uuid.New())

	// Assert
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobService_OpenRead_SurfacesMissingChunkAsCorrupt(t *testing.T) {
	// Arrange: lose a middle chunk after the blob went complete.
	ctx := context.Background()
	service, _, chunks := newTestService(t)

	payload := randomBytes(t, 3*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)
	chunks.Drop(uploaded.ID, 1)

	// Act
	_, stream, err := service.OpenRead(ctx, uploaded.ID)
	require.NoError(t, err)
	defer stream.Close()
	_, err = io.ReadAll(stream)

	// Assert: the failure shows up mid-stream, not at open.
	assert.ErrorIs(t, err, domain.ErrCorruptBlob)
}

func TestBlobService_OpenRead_StreamIsLazy(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, chunks := newTestService(t)

	payload := randomBytes(t, 3*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	// Act: open succeeds even though a later chunk is already gone.
	chunks.Drop(uploaded.ID, 2)
	_, stream, err := service.OpenRead(ctx, uploaded.ID)
	require.NoError(t, err)
	defer stream.Close()

	head := make([]byte, testChunkSize)
	_, err = io.ReadFull(stream, head)

	// Assert: the intact prefix is still readable.
	require.NoError(t, err)
	assert.Equal(t, payload[:testChunkSize], head)
}

func TestBlobService_OpenReadRange(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, 3*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	cases := []struct {
		offset, length int64
	}{
		{0, 1},
		{0, int64(len(payload))},
		{testChunkSize, testChunkSize},
		{testChunkSize - 1, 2},
		{testChunkSize + 7, 2*testChunkSize - 7},
		{int64(len(payload)) - 1, 1},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d+%d", tc.offset, tc.length), func(t *testing.T) {
			// Act
			_, stream, err := service.OpenReadRange(ctx, uploaded.ID, tc.offset, tc.length)
			require.NoError(t, err)
			defer stream.Close()
			got, err := io.ReadAll(stream)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, payload[tc.offset:tc.offset+tc.length], got)
		})
	}
}

func TestBlobService_OpenReadRange_ClipsLengthPastEnd(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, testChunkSize+5)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	// Act
	_, stream, err := service.OpenReadRange(ctx, uploaded.ID, testChunkSize, 4*testChunkSize)
	require.NoError(t, err)
	defer stream.Close()
	got, err := io.ReadAll(stream)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, payload[testChunkSize:], got)
}

func TestBlobService_OpenReadRange_RejectsInvalidRange(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	cases := []struct {
		name           string
		offset, length int64
	}{
		{"negative offset", -1, 10},
		{"zero length", 0, 0},
		{"offset at end", testChunkSize, 1},
		{"offset past end", 2 * testChunkSize, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, _, err := service.OpenReadRange(ctx, uploaded.ID, tc.offset, tc.length)

			// Assert
			assert.ErrorIs(t, err, domain.ErrInvalidRange)
		})
	}
}

func TestBlobService_OpenRead_ClosedStreamStopsReading(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, _, _ := newTestService(t)

	payload := randomBytes(t, 2*testChunkSize)
	uploaded, err := service.Upload(ctx, bytes.NewReader(payload), "audio/mpeg", "track.mp3", nil)
	require.NoError(t, err)

	_, stream, err := service.OpenRead(ctx, uploaded.ID)
	require.NoError(t, err)

	// Act
	require.NoError(t, stream.Close())
	_, err = stream.Read(make([]byte, 1))

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
