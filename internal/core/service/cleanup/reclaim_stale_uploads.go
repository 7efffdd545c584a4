package cleanup

import (
	"context"
	"time"
)

// ReclaimStaleUploads aborts pending blobs whose last write is older than
// the grace period. Chunk writes refresh updated_at, so an upload still
// making progress is never reclaimed. Failures on one blob are logged and
// the sweep moves on; the next run retries.
func (c *cleanupService) ReclaimStaleUploads(ctx context.Context, now time.Time) error {

	stale, err := c.uow.BlobRepo().FindStalePending(ctx, now.Add(-c.pendingTTL))
	if err != nil {
		return err
	}

	for _, blob := range stale {
		if err := c.uow.BlobRepo().Delete(ctx, blob.ID); err != nil {
			c.logger.Error("failed to delete stale pending record", "blob_id", blob.ID, "error", err)
			continue
		}

		removed, err := c.chunks.DeleteAll(ctx, blob.ID)
		if err != nil {
			// The record is gone, so the orphan sweep will find these chunks.
			c.logger.Error("failed to delete chunks of stale upload", "blob_id", blob.ID, "error", err)
			continue
		}

		c.logger.Info("stale upload reclaimed", "blob_id", blob.ID, "chunks_removed", removed)
	}

	return nil
}
