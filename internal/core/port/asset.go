package port

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/google/uuid"
)

// AssetRepository is an interface to define catalog entry persistence
type AssetRepository interface {
	Create(ctx context.Context, asset domain.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	// List returns all assets in creation order.
	List(ctx context.Context) ([]domain.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogService is an interface to define the asset catalog operations
type CatalogService interface {
	// CreateAsset binds a complete audio blob and a complete image blob into
	// a new catalog entry. It fails with ErrInvalidReference when either blob
	// is unknown or still pending.
	CreateAsset(ctx context.Context, title, artist string, durationSeconds *float64, audioBlobID, imageBlobID uuid.UUID) (*domain.Asset, error)
	GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	// DeleteAsset removes both referenced blobs and then the entry. When a
	// blob deletion fails the entry is retained so a retry can resume.
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}
