package blob

import (
	"log/slog"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// Handler is the handler for blob streaming routes
type Handler struct {
	blobService port.BlobService
	logger      *slog.Logger
}

// NewBlobHandler creates Handler
func NewBlobHandler(blobService port.BlobService, logger *slog.Logger) *Handler {
	return &Handler{
		blobService: blobService,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{blobID}", h.GetBlob)

	return router
}
