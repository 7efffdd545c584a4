package port

import (
	"context"
	"io"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// ChunkStore is an interface to define durable chunk persistence keyed by
// (blob id, sequence number). Writes of distinct keys are independent; a
// key is written at most once. DeleteAll is idempotent and safe to call
// concurrently with in-flight reads of the same blob.
type ChunkStore interface {
	Put(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error
	Get(ctx context.Context, blobID uuid.UUID, sequence int) ([]byte, error)
	// ListSequences returns the chunks present for the blob ordered by
	// ascending sequence number.
	ListSequences(ctx context.Context, blobID uuid.UUID) ([]domain.ChunkRef, error)
	// DeleteAll removes every chunk of the blob and returns how many were removed.
	DeleteAll(ctx context.Context, blobID uuid.UUID) (int64, error)
	// ListBlobIDs returns the distinct blob ids that currently own chunks.
	ListBlobIDs(ctx context.Context) ([]uuid.UUID, error)
}

// BlobRepository is an interface to define blob registry interactions
type BlobRepository interface {
	Create(ctx context.Context, blob domain.Blob) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Blob, error)
	// Finalize transitions a pending record to complete and fixes its
	// authoritative size and chunk size. It fails with ErrBlobNotFound for
	// unknown ids and ErrAlreadyFinalized for complete ones.
	Finalize(ctx context.Context, id uuid.UUID, sizeBytes int64, chunkSize int) error
	// Touch refreshes the updated_at of a pending record so a long
	// upload is not mistaken for a stale one by the cleanup sweep.
	Touch(ctx context.Context, id uuid.UUID) error
	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.Blob, error)
}

// BlobService is an interface to define the blob pipelines: chunked upload,
// streamed download and coordinated deletion.
type BlobService interface {
	BeginUpload(ctx context.Context, contentType, originalName string, tags map[string]string) (uuid.UUID, error)
	WriteChunk(ctx context.Context, blobID uuid.UUID, sequence int, payload []byte) error
	CompleteUpload(ctx context.Context, blobID uuid.UUID, totalLength int64) error
	AbortUpload(ctx context.Context, blobID uuid.UUID) error
	// Upload consumes the reader in chunk-size windows and drives
	// BeginUpload/WriteChunk/CompleteUpload, aborting on any failure.
	Upload(ctx context.Context, r io.Reader, contentType, originalName string, tags map[string]string) (*domain.Blob, error)
	// OpenRead yields the blob bytes as a lazy, ordered, non-restartable
	// stream. It fails with ErrBlobNotFound unless the blob is complete.
	OpenRead(ctx context.Context, blobID uuid.UUID) (*domain.Blob, io.ReadCloser, error)
	// OpenReadRange is OpenRead limited to length bytes starting at offset.
	OpenReadRange(ctx context.Context, blobID uuid.UUID, offset, length int64) (*domain.Blob, io.ReadCloser, error)
	DeleteBlob(ctx context.Context, blobID uuid.UUID) error
}
