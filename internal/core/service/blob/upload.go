package blob

import (
	"context"
	"errors"
	"io"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// Upload consumes the reader in windows of the configured chunk size and
// drives the chunked upload end to end. Peak memory stays at one window
// regardless of how large the stream is. Any failure, including the
// client disconnecting mid-stream, triggers an abort before the error is
// surfaced, so a failed request never leaves orphan chunks behind.
func (b *blobService) Upload(ctx context.Context, r io.Reader, contentType, originalName string, tags map[string]string) (*domain.Blob, error) {

	blobID, err := b.BeginUpload(ctx, contentType, originalName, tags)
	if err != nil {
		return nil, err
	}

	uploaded, err := b.consume(ctx, blobID, r)
	if err != nil {
		if abortErr := b.AbortUpload(ctx, blobID); abortErr != nil {
			b.logger.Error("failed to abort upload", "blob_id", blobID, "error", abortErr)
		}
		return nil, err
	}

	return uploaded, nil
}

func (b *blobService) consume(ctx context.Context, blobID uuid.UUID, r io.Reader) (*domain.Blob, error) {

	window := make([]byte, b.storageCfg.ChunkSize)
	var total int64
	sequence := 0

	for {
		n, readErr := io.ReadFull(r, window)
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil && !errors.Is(readErr, io.ErrUnexpectedEOF) {
			return nil, readErr
		}

		if n > 0 {
			if err := b.WriteChunk(ctx, blobID, sequence, window[:n]); err != nil {
				return nil, err
			}
			total += int64(n)
			sequence++
		}

		// A short read means the stream ended inside this window.
		if errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
	}

	if err := b.CompleteUpload(ctx, blobID, total); err != nil {
		return nil, err
	}

	return b.uow.BlobRepo().FindByID(ctx, blobID)
}
