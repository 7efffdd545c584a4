package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"
)

type catalogService struct {
	uow       port.UnitOfWork
	blobs     port.BlobService
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(uow port.UnitOfWork, blobs port.BlobService, publisher port.EventPublisher, logger *slog.Logger) port.CatalogService {
	return &catalogService{
		uow:       uow,
		blobs:     blobs,
		publisher: publisher,
		logger:    logger,
	}
}

// publish emits a lifecycle event. The feed is advisory (client caches
// use it to evict blobs), so failures are logged and swallowed.
func (c *catalogService) publish(ctx context.Context, event domain.AssetEventType, asset *domain.Asset) {
	err := c.publisher.PublishAssetEvent(ctx, domain.AssetEvent{
		Event:       event,
		AssetID:     asset.ID,
		AudioBlobID: asset.AudioBlobID,
		ImageBlobID: asset.ImageBlobID,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		c.logger.Error("failed to publish asset event", "event", event, "asset_id", asset.ID, "error", err)
	}
}
