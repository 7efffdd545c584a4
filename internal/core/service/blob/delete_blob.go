package blob

import (
	"context"

	"github.com/google/uuid"
)

// DeleteBlob removes the registry record first, then the chunks. A reader
// arriving after the record is gone sees not-found; a reader that already
// passed the registry lookup may still drain chunks that have not been
// removed yet. There is no cross-store transaction closing that window.
// The operation is idempotent so client retries are safe.
func (b *blobService) DeleteBlob(ctx context.Context, blobID uuid.UUID) error {

	if err := b.uow.BlobRepo().Delete(ctx, blobID); err != nil {
		return err
	}

	removed, err := b.chunks.DeleteAll(ctx, blobID)
	if err != nil {
		return err
	}

	if removed > 0 {
		b.logger.Info("blob deleted", "blob_id", blobID, "chunks_removed", removed)
	}
	return nil
}
