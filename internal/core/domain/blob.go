package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlobStatus represents the lifecycle state of a blob record
type BlobStatus string

const (
	// BlobStatusPending marks a blob whose upload has begun but not finished.
	// Pending blobs are invisible to readers.
	BlobStatusPending BlobStatus = "pending"
	// BlobStatusComplete marks a blob whose chunks are all durably written.
	BlobStatusComplete BlobStatus = "complete"
)

// Blob represents the registry record of one stored binary object
type Blob struct {
	ID           uuid.UUID
	ContentType  string
	OriginalName string
	Tags         map[string]string
	SizeBytes    int64
	ChunkSize    int
	Status       BlobStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Readable reports whether the blob may be served to a reader.
// SizeBytes and ChunkSize are authoritative only once this is true.
func (b *Blob) Readable() bool {
	return b.Status == BlobStatusComplete
}

// ChunkCount returns the number of chunks a complete blob of this
// size and chunk size occupies. A zero-length blob has no chunks.
func (b *Blob) ChunkCount() int {
	if b.SizeBytes == 0 {
		return 0
	}
	return int((b.SizeBytes + int64(b.ChunkSize) - 1) / int64(b.ChunkSize))
}

// ChunkRef identifies one stored chunk of a blob and its payload size
type ChunkRef struct {
	Sequence int
	Size     int64
}
