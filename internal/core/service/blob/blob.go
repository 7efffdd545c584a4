package blob

import (
	"log/slog"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/config"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
)

type blobService struct {
	uow        port.UnitOfWork
	chunks     port.ChunkStore
	storageCfg config.StorageConfig
	logger     *slog.Logger
}

// NewBlobService creates a new blob service
func NewBlobService(uow port.UnitOfWork, chunks port.ChunkStore, cfg config.StorageConfig, logger *slog.Logger) port.BlobService {
	return &blobService{
		uow:        uow,
		chunks:     chunks,
		storageCfg: cfg,
		logger:     logger,
	}
}
