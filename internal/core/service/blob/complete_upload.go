package blob

import (
	"context"
	"fmt"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// CompleteUpload validates the written chunks against the declared total
// length and finalizes the registry record. Finalize is the single point
// after which readers observe the blob; on any error here the caller must
// abort the upload to reclaim the chunks.
func (b *blobService) CompleteUpload(ctx context.Context, blobID uuid.UUID, totalLength int64) error {

	metadata, err := b.uow.BlobRepo().FindByID(ctx, blobID)
	if err != nil {
		return err
	}
	if metadata.Status != domain.BlobStatusPending {
		return fmt.Errorf("blob %s: %w", blobID, domain.ErrAlreadyFinalized)
	}

	written, err := b.chunks.ListSequences(ctx, blobID)
	if err != nil {
		return err
	}

	chunkSize := int64(metadata.ChunkSize)
	var sum int64
	for i, ref := range written {
		if ref.Sequence != i {
			return fmt.Errorf("blob %s: chunk %d missing: %w", blobID, i, domain.ErrIncompleteSequence)
		}
		last := i == len(written)-1
		if !last && ref.Size != chunkSize {
			return fmt.Errorf("blob %s: chunk %d has %d bytes, want %d: %w", blobID, i, ref.Size, chunkSize, domain.ErrLengthMismatch)
		}
		if last && (ref.Size < 1 || ref.Size > chunkSize) {
			return fmt.Errorf("blob %s: last chunk has %d bytes: %w", blobID, ref.Size, domain.ErrLengthMismatch)
		}
		sum += ref.Size
	}
	if sum != totalLength {
		return fmt.Errorf("blob %s: chunks hold %d bytes, declared %d: %w", blobID, sum, totalLength, domain.ErrLengthMismatch)
	}

	return b.uow.BlobRepo().Finalize(ctx, blobID, totalLength, metadata.ChunkSize)
}
