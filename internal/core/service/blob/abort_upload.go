package blob

import (
	"context"

	"github.com/google/uuid"
)

// AbortUpload reclaims everything a failed or disconnected upload left
// behind: the pending registry record and every chunk written so far.
// Aborting an unknown or already-aborted blob is not an error.
func (b *blobService) AbortUpload(ctx context.Context, blobID uuid.UUID) error {

	if err := b.uow.BlobRepo().Delete(ctx, blobID); err != nil {
		return err
	}

	removed, err := b.chunks.DeleteAll(ctx, blobID)
	if err != nil {
		return err
	}

	b.logger.Info("upload aborted", "blob_id", blobID, "chunks_removed", removed)
	return nil
}
