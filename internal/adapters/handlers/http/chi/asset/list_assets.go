package asset

import (
	"encoding/json"
	"net/http"
)

// ListAssets returns every catalog entry in creation order
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {

	assets, err := h.catalogService.ListAssets(r.Context())
	if err != nil {
		h.logger.Error("failed to list assets", "error", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	resp := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		resp = append(resp, toAssetResponse(&assets[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
