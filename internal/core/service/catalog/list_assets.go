package catalog

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
)

// ListAssets returns all catalog entries in creation order
func (c *catalogService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return c.uow.AssetRepo().List(ctx)
}
