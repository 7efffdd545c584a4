package cleanup

import (
	"context"
	"errors"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
)

// ReclaimOrphanChunks removes chunk groups that no registry record owns.
// These come from the crash window between a registry delete and the
// chunk delete, or from a lost record. A group whose blob id resolves to
// any record, pending included, is left alone: pending uploads own their
// chunks until the stale sweep ages them out.
func (c *cleanupService) ReclaimOrphanChunks(ctx context.Context) error {

	blobIDs, err := c.chunks.ListBlobIDs(ctx)
	if err != nil {
		return err
	}

	for _, blobID := range blobIDs {
		_, err := c.uow.BlobRepo().FindByID(ctx, blobID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrBlobNotFound) {
			c.logger.Error("failed to look up chunk owner", "blob_id", blobID, "error", err)
			continue
		}

		removed, delErr := c.chunks.DeleteAll(ctx, blobID)
		if delErr != nil {
			c.logger.Error("failed to delete orphan chunks", "blob_id", blobID, "error", delErr)
			continue
		}

		c.logger.Info("orphan chunks reclaimed", "blob_id", blobID, "chunks_removed", removed)
	}

	return nil
}
