package catalog

import (
	"context"
	"fmt"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// DeleteAsset removes both referenced blobs and then the entry itself.
// Blobs go first: if either deletion fails the entry is retained with the
// failing blob id in the error, so a retry resumes where it stopped
// instead of referencing a blob known to be gone. Blob deletion being
// idempotent makes the retry safe.
func (c *catalogService) DeleteAsset(ctx context.Context, id uuid.UUID) error {

	asset, err := c.uow.AssetRepo().FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.blobs.DeleteBlob(ctx, asset.AudioBlobID); err != nil {
		return fmt.Errorf("deleting audio blob %s: %w", asset.AudioBlobID, err)
	}
	if err := c.blobs.DeleteBlob(ctx, asset.ImageBlobID); err != nil {
		return fmt.Errorf("deleting image blob %s: %w", asset.ImageBlobID, err)
	}

	if err := c.uow.AssetRepo().Delete(ctx, id); err != nil {
		return err
	}

	c.publish(ctx, domain.AssetEventDeleted, asset)
	return nil
}
