package postgres_test

import (
	"context"
	"testing"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/repository/postgres"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	blobRepo := postgres.NewSqlBlobRepository(dbConnection)

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()
		blob := pendingBlob()

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			return u.BlobRepo().Create(ctx, blob)
		})

		//assert
		require.NoError(t, err)
		found, err := blobRepo.FindByID(ctx, blob.ID)
		require.NoError(t, err)
		require.Equal(t, blob.ID, found.ID)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		defer truncate()
		blob := pendingBlob()

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			_ = u.BlobRepo().Create(ctx, blob)
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = blobRepo.FindByID(ctx, blob.ID)
		require.ErrorIs(t, err, domain.ErrBlobNotFound)
	})

	t.Run("Should rollback across both repositories", func(t *testing.T) {
		defer truncate()
		blob := pendingBlob()
		asset := fixtureAsset("Giorni")

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.BlobRepo().Create(ctx, blob); err != nil {
				return err
			}
			if err := u.AssetRepo().Create(ctx, asset); err != nil {
				return err
			}
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = blobRepo.FindByID(ctx, blob.ID)
		require.ErrorIs(t, err, domain.ErrBlobNotFound)
		_, err = postgres.NewSqlAssetRepository(dbConnection).FindByID(ctx, asset.ID)
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}
