package asset

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler is the handler for catalog asset routes
type Handler struct {
	catalogService port.CatalogService
	blobService    port.BlobService
	logger         *slog.Logger
}

// NewAssetHandler creates Handler
func NewAssetHandler(catalogService port.CatalogService, blobService port.BlobService, logger *slog.Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		blobService:    blobService,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListAssets)
	router.Post("/", h.CreateAsset)
	router.Get("/{assetID}", h.GetAsset)
	router.Delete("/{assetID}", h.DeleteAsset)

	return router
}

// AssetResponse is the wire form of one catalog entry. The refs are
// opaque locators the blob endpoint resolves.
type AssetResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	ImageRef  string    `json:"imageRef"`
	AudioRef  string    `json:"audioRef"`
	Duration  *float64  `json:"duration,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAssetResponse(asset *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:        asset.ID,
		Title:     asset.Title,
		Artist:    asset.Artist,
		ImageRef:  fmt.Sprintf("/blobs/%s", asset.ImageBlobID),
		AudioRef:  fmt.Sprintf("/blobs/%s", asset.AudioBlobID),
		Duration:  asset.DurationSeconds,
		CreatedAt: asset.CreatedAt,
	}
}
