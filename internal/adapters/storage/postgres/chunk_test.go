package postgres_test

import (
	"bytes"
	"context"
	"testing"

	repository "github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/repository/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/storage/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlChunkStore(t *testing.T) {
	dbConnection, cleanup, truncate := repository.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	store := postgres.NewSqlChunkStore(dbConnection)

	t.Run("Put and Get - Round Trip", func(t *testing.T) {
		// Arrange
		truncate()
		blobID := uuid.New()
		payload := bytes.Repeat([]byte{0xAB}, 1024)

		// Act
		err := store.Put(ctx, blobID, 0, payload)

		// Assert
		require.NoError(t, err)
		got, err := store.Get(ctx, blobID, 0)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("Put - Duplicate Key", func(t *testing.T) {
		// Arrange
		truncate()
		blobID := uuid.New()
		require.NoError(t, store.Put(ctx, blobID, 0, []byte{1}))

		// Act
		err := store.Put(ctx, blobID, 0, []byte{2})

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("Get - Not Found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		_, err := store.Get(ctx, uuid.New(), 0)

		// Assert
		require.ErrorIs(t, err, domain.ErrChunkNotFound)
	})

	t.Run("ListSequences - Ordered With Sizes", func(t *testing.T) {
		// Arrange
		truncate()
		blobID := uuid.New()
		require.NoError(t, store.Put(ctx, blobID, 2, make([]byte, 10)))
		require.NoError(t, store.Put(ctx, blobID, 0, make([]byte, 1024)))
		require.NoError(t, store.Put(ctx, blobID, 1, make([]byte, 1024)))

		// Act
		refs, err := store.ListSequences(ctx, blobID)

		// Assert
		require.NoError(t, err)
		require.Equal(t, []domain.ChunkRef{
			{Sequence: 0, Size: 1024},
			{Sequence: 1, Size: 1024},
			{Sequence: 2, Size: 10},
		}, refs)
	})

	t.Run("ListSequences - Empty", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		refs, err := store.ListSequences(ctx, uuid.New())

		// Assert
		require.NoError(t, err)
		require.Empty(t, refs)
	})

	t.Run("DeleteAll - Removes Only Target Blob", func(t *testing.T) {
		// Arrange
		truncate()
		victim := uuid.New()
		survivor := uuid.New()
		require.NoError(t, store.Put(ctx, victim, 0, []byte{1}))
		require.NoError(t, store.Put(ctx, victim, 1, []byte{2}))
		require.NoError(t, store.Put(ctx, survivor, 0, []byte{3}))

		// Act
		removed, err := store.DeleteAll(ctx, victim)

		// Assert
		require.NoError(t, err)
		require.Equal(t, int64(2), removed)
		_, err = store.Get(ctx, victim, 0)
		require.ErrorIs(t, err, domain.ErrChunkNotFound)
		_, err = store.Get(ctx, survivor, 0)
		require.NoError(t, err)
	})

	t.Run("DeleteAll - Idempotent", func(t *testing.T) {
		// Arrange
		truncate()
		blobID := uuid.New()
		require.NoError(t, store.Put(ctx, blobID, 0, []byte{1}))
		_, err := store.DeleteAll(ctx, blobID)
		require.NoError(t, err)

		// Act
		removed, err := store.DeleteAll(ctx, blobID)

		// Assert
		require.NoError(t, err)
		require.Zero(t, removed)
	})

	t.Run("ListBlobIDs - Distinct Owners", func(t *testing.T) {
		// Arrange
		truncate()
		first := uuid.New()
		second := uuid.New()
		require.NoError(t, store.Put(ctx, first, 0, []byte{1}))
		require.NoError(t, store.Put(ctx, first, 1, []byte{2}))
		require.NoError(t, store.Put(ctx, second, 0, []byte{3}))

		// Act
		ids, err := store.ListBlobIDs(ctx)

		// Assert
		require.NoError(t, err)
		require.ElementsMatch(t, []uuid.UUID{first, second}, ids)
	})
}
