package cleanup_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/repository"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/config"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/blob"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/service/cleanup"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testChunkSize = 1024
	testTTL       = time.Hour
)

type cleanupFixture struct {
	cleanup port.CleanupService
	blobs   port.BlobService
	uow     *repository.MemoryUnitOfWork
	chunks  *storage.MemoryChunkStore
}

func newCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()
	uow := repository.NewMemoryUnitOfWork()
	chunks := storage.NewMemoryChunkStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &cleanupFixture{
		cleanup: cleanup.NewCleanupService(uow, chunks, testTTL, logger),
		blobs:   blob.NewBlobService(uow, chunks, config.StorageConfig{Driver: "memory", ChunkSize: testChunkSize}, logger),
		uow:     uow,
		chunks:  chunks,
	}
}

// beginPendingUpload starts an upload with n chunks written and leaves it
// pending, as a crashed client would.
func (f *cleanupFixture) beginPendingUpload(t *testing.T, n int) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	blobID, err := f.blobs.BeginUpload(ctx, "audio/mpeg", "abandoned.mp3", nil)
	require.NoError(t, err)
	for sequence := 0; sequence < n; sequence++ {
		require.NoError(t, f.blobs.WriteChunk(ctx, blobID, sequence, make([]byte, testChunkSize)))
	}
	return blobID
}

func TestCleanupService_ReclaimStaleUploads(t *testing.T) {
	// Arrange: one upload aged past the TTL, one still fresh.
	ctx := context.Background()
	fixture := newCleanupFixture(t)

	staleID := fixture.beginPendingUpload(t, 3)
	fixture.uow.GetBlobRepo().SetUpdatedAt(staleID, time.Now().Add(-2*testTTL))
	freshID := fixture.beginPendingUpload(t, 1)

	// Act
	err := fixture.cleanup.ReclaimStaleUploads(ctx, time.Now())

	// Assert: the stale upload is gone, record and chunks both.
	require.NoError(t, err)
	_, err = fixture.uow.BlobRepo().FindByID(ctx, staleID)
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	ids, err := fixture.chunks.ListBlobIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{freshID}, ids)

	_, err = fixture.uow.BlobRepo().FindByID(ctx, freshID)
	assert.NoError(t, err)
}

func TestCleanupService_ReclaimStaleUploads_SparesCompleteBlobs(t *testing.T) {
	// Arrange: a complete blob that has not been touched for a long time.
	ctx := context.Background()
	fixture := newCleanupFixture(t)

	blobID := fixture.beginPendingUpload(t, 2)
	require.NoError(t, fixture.blobs.CompleteUpload(ctx, blobID, 2*testChunkSize))
	fixture.uow.GetBlobRepo().SetUpdatedAt(blobID, time.Now().Add(-100*testTTL))

	// Act
	err := fixture.cleanup.ReclaimStaleUploads(ctx, time.Now())

	// Assert: age alone never reclaims a complete blob.
	require.NoError(t, err)
	metadata, err := fixture.uow.BlobRepo().FindByID(ctx, blobID)
	require.NoError(t, err)
	assert.Equal(t, domain.BlobStatusComplete, metadata.Status)
}

func TestCleanupService_ReclaimStaleUploads_RespectsChunkTouches(t *testing.T) {
	// Arrange: an old upload whose latest chunk write was recent.
	ctx := context.Background()
	fixture := newCleanupFixture(t)

	blobID := fixture.beginPendingUpload(t, 1)
	fixture.uow.GetBlobRepo().SetUpdatedAt(blobID, time.Now().Add(-2*testTTL))
	require.NoError(t, fixture.blobs.WriteChunk(ctx, blobID, 1, make([]byte, testChunkSize)))

	// Act
	err := fixture.cleanup.ReclaimStaleUploads(ctx, time.Now())

	// Assert: the write refreshed the record, so it survives.
	require.NoError(t, err)
	_, err = fixture.uow.BlobRepo().FindByID(ctx, blobID)
	assert.NoError(t, err)
}
