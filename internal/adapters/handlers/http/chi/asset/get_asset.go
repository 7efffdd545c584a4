package asset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetAsset returns one catalog entry
func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, "malformed asset id", http.StatusBadRequest)
		return
	}

	asset, err := h.catalogService.GetAsset(r.Context(), assetID)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to get asset", "asset_id", assetID, "error", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toAssetResponse(asset)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
