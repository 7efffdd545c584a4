package blob

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// BeginUpload registers a pending blob record and returns its id. The
// blob stays invisible to readers until CompleteUpload finalizes it.
func (b *blobService) BeginUpload(ctx context.Context, contentType, originalName string, tags map[string]string) (uuid.UUID, error) {

	blobID := uuid.New()

	record := domain.Blob{
		ID:           blobID,
		ContentType:  contentType,
		OriginalName: originalName,
		Tags:         tags,
		ChunkSize:    b.storageCfg.ChunkSize,
		Status:       domain.BlobStatusPending,
	}

	if err := b.uow.BlobRepo().Create(ctx, record); err != nil {
		return uuid.Nil, err
	}

	return blobID, nil
}
