package asset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeleteAssetResponse is the response to a successful delete
type DeleteAssetResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// DeleteAsset removes the entry and both referenced blobs. A partial
// blob-deletion failure keeps the entry and answers 500; retrying the
// delete is safe because blob deletion is idempotent.
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {

	assetID, parseErr := uuid.Parse(chi.URLParam(r, "assetID"))
	if parseErr != nil {
		http.Error(w, "malformed asset id", http.StatusBadRequest)
		return
	}

	err := h.catalogService.DeleteAsset(r.Context(), assetID)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to delete asset", "asset_id", assetID, "error", err)
		http.Error(w, "blob deletion failed", http.StatusInternalServerError)
		return
	}

	resp := DeleteAssetResponse{ID: assetID, Deleted: true}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
