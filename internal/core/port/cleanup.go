package port

import (
	"context"
	"time"
)

// CleanupService is a service that reclaims storage left behind by crashed
// or abandoned uploads
type CleanupService interface {
	// ReclaimStaleUploads aborts pending blobs whose last write is older
	// than the configured grace period at the given instant.
	ReclaimStaleUploads(ctx context.Context, now time.Time) error
	// ReclaimOrphanChunks removes chunk groups that no registry record owns.
	ReclaimOrphanChunks(ctx context.Context) error
}
