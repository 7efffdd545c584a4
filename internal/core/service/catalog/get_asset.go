package catalog

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// GetAsset returns one catalog entry by id
func (c *catalogService) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return c.uow.AssetRepo().FindByID(ctx, id)
}
