package blob

import (
	"context"
	"fmt"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// WriteChunk appends one chunk to a pending blob. Sequence numbers must
// start at 0 and increment by 1; a gap or a duplicate means the caller
// lost track of the stream, and reconstruction depends on contiguity.
func (b *blobService) WriteChunk(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error {

	metadata, err := b.uow.BlobRepo().FindByID(ctx, blobID)
	if err != nil {
		return err
	}
	if metadata.Status != domain.BlobStatusPending {
		return fmt.Errorf("blob %s: %w", blobID, domain.ErrAlreadyFinalized)
	}

	// Written chunks are contiguous from 0, so the next valid sequence
	// number is exactly the count of chunks already present.
	written, err := b.chunks.ListSequences(ctx, blobID)
	if err != nil {
		return err
	}
	if sequence != len(written) {
		return fmt.Errorf("blob %s: expected sequence %d, got %d: %w", blobID, len(written), sequence, domain.ErrChunkSequence)
	}

	if err := b.chunks.Put(ctx, blobID, sequence, payload); err != nil {
		return err
	}

	return b.uow.BlobRepo().Touch(ctx, blobID)
}
