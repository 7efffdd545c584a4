package cleanup

import (
	"log/slog"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
)

// cleanupService is the durability safety net behind the in-request abort
// path: a process crash between a chunk write and a finalize leaves state
// no request handler can reclaim, so a periodic sweep picks it up.
type cleanupService struct {
	uow        port.UnitOfWork
	chunks     port.ChunkStore
	pendingTTL time.Duration
	logger     *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, chunks port.ChunkStore, pendingTTL time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:        uow,
		chunks:     chunks,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}
