package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// OpenRead yields the blob bytes as a lazy, ordered, non-restartable
// stream, fetching one chunk per read window. Pending and unknown blobs
// are both not-found: a reader must never observe a partial upload.
func (b *blobService) OpenRead(ctx context.Context, blobID uuid.UUID) (*domain.Blob, io.ReadCloser, error) {

	metadata, err := b.uow.BlobRepo().FindByID(ctx, blobID)
	if err != nil {
		return nil, nil, err
	}
	if !metadata.Readable() {
		return nil, nil, fmt.Errorf("blob %s is pending: %w", blobID, domain.ErrBlobNotFound)
	}

	return metadata, newChunkReader(ctx, b.chunks, metadata, 0, metadata.SizeBytes), nil
}

// OpenReadRange is OpenRead limited to length bytes starting at offset.
// Whole chunks before the offset are never fetched; the boundary chunks
// are trimmed in memory. A length past the end of the blob is clipped.
func (b *blobService) OpenReadRange(ctx context.Context, blobID uuid.UUID, offset, length int64) (*domain.Blob, io.ReadCloser, error) {

	metadata, err := b.uow.BlobRepo().FindByID(ctx, blobID)
	if err != nil {
		return nil, nil, err
	}
	if !metadata.Readable() {
		return nil, nil, fmt.Errorf("blob %s is pending: %w", blobID, domain.ErrBlobNotFound)
	}

	if offset < 0 || length <= 0 || offset >= metadata.SizeBytes {
		return nil, nil, fmt.Errorf("offset %d length %d of %d bytes: %w", offset, length, metadata.SizeBytes, domain.ErrInvalidRange)
	}
	if offset+length > metadata.SizeBytes {
		length = metadata.SizeBytes - offset
	}

	return metadata, newChunkReader(ctx, b.chunks, metadata, offset, length), nil
}
