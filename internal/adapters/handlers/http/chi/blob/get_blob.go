package blob

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetBlob streams the blob body. A single Range header is honored with
// 206; an unsatisfiable range answers 416; a malformed or multi-range
// header is ignored and the full body is served, which HTTP permits.
// Once the body is streaming the status line is committed, so a chunk
// lost mid-stream can only abort the copy; it is logged, and the client
// sees a truncated transfer.
func (h *Handler) GetBlob(w http.ResponseWriter, r *http.Request) {

	blobID, parseErr := uuid.Parse(chi.URLParam(r, "blobID"))
	if parseErr != nil {
		http.Error(w, "malformed blob id", http.StatusBadRequest)
		return
	}

	metadata, stream, err := h.blobService.OpenRead(r.Context(), blobID)
	switch {
	case errors.Is(err, domain.ErrBlobNotFound):
		http.Error(w, "blob not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to open blob", "blob_id", blobID, "error", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	length := metadata.SizeBytes

	if rangeHeader := r.Header.Get("Range"); rangeHeader != "" {
		offset, rangeLength, valid, satisfiable := resolveRange(rangeHeader, metadata.SizeBytes)
		if valid && !satisfiable {
			stream.Close()
			w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", metadata.SizeBytes))
			http.Error(w, "requested range not satisfiable", http.StatusRequestedRangeNotSatisfiable)
			return
		}
		if valid {
			stream.Close()
			_, stream, err = h.blobService.OpenReadRange(r.Context(), blobID, offset, rangeLength)
			switch {
			case errors.Is(err, domain.ErrInvalidRange):
				w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", metadata.SizeBytes))
				http.Error(w, "requested range not satisfiable", http.StatusRequestedRangeNotSatisfiable)
				return
			case errors.Is(err, domain.ErrBlobNotFound):
				http.Error(w, "blob not found", http.StatusNotFound)
				return
			case err != nil:
				h.logger.Error("failed to open blob range", "blob_id", blobID, "error", err)
				http.Error(w, "storage failure", http.StatusInternalServerError)
				return
			}
			status = http.StatusPartialContent
			length = rangeLength
			w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", offset, offset+rangeLength-1, metadata.SizeBytes))
		}
	}
	defer stream.Close()

	w.Header().Set("Content-Type", metadata.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(length, 10))
	w.Header().Set("Accept-Ranges", "bytes")
	w.WriteHeader(status)

	if _, err := io.Copy(w, stream); err != nil {
		h.logger.Error("blob stream aborted", "blob_id", blobID, "error", err)
	}
}
