package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/google/uuid"
)

// CreateAsset binds a complete audio blob and a complete image blob into
// a new catalog entry. The reference check and the insert run in one
// transaction so a blob cannot slip away between validation and commit.
func (c *catalogService) CreateAsset(ctx context.Context, title, artist string, durationSeconds *float64, audioBlobID, imageBlobID uuid.UUID) (*domain.Asset, error) {

	asset := domain.Asset{
		ID:              uuid.New(),
		Title:           title,
		Artist:          artist,
		AudioBlobID:     audioBlobID,
		ImageBlobID:     imageBlobID,
		DurationSeconds: durationSeconds,
	}

	txErr := c.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		for _, blobID := range []uuid.UUID{audioBlobID, imageBlobID} {
			metadata, err := uow.BlobRepo().FindByID(ctx, blobID)
			if errors.Is(err, domain.ErrBlobNotFound) {
				return fmt.Errorf("blob %s: %w", blobID, domain.ErrInvalidReference)
			}
			if err != nil {
				return err
			}
			if !metadata.Readable() {
				return fmt.Errorf("blob %s is pending: %w", blobID, domain.ErrInvalidReference)
			}
		}

		return uow.AssetRepo().Create(ctx, asset)
	})
	if txErr != nil {
		return nil, txErr
	}

	created, err := c.uow.AssetRepo().FindByID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}

	c.publish(ctx, domain.AssetEventCreated, created)
	return created, nil
}
