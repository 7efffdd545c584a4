package asset

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// maxFieldBytes caps text form fields; the file parts stream through the
// upload pipeline and are bounded by the request size middleware.
const maxFieldBytes = 4 << 10

// CreateAsset handles the multipart asset upload: exactly one audio part
// and one image part plus title, artist and optional duration fields.
// Parts are streamed straight into the upload pipeline, never buffered
// whole, so a file part is tagged with the text fields that arrived
// before it. Clients sending files first still succeed; their blobs just
// carry fewer tags, the catalog entry itself is unaffected. If anything
// is missing or any step fails, every blob already uploaded for this
// request is deleted before the error response, so a rejected request
// leaves no storage behind.
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {

	reader, err := r.MultipartReader()
	if err != nil {
		http.Error(w, "multipart body required", http.StatusBadRequest)
		return
	}

	var (
		title, artist string
		duration      *float64
		audioBlobID   *uuid.UUID
		imageBlobID   *uuid.UUID
		uploaded      []uuid.UUID
	)

	fail := func(status int, message string) {
		for _, blobID := range uploaded {
			if delErr := h.blobService.DeleteBlob(r.Context(), blobID); delErr != nil {
				h.logger.Error("failed to delete blob of rejected request", "blob_id", blobID, "error", delErr)
			}
		}
		http.Error(w, message, status)
	}

	for {
		part, partErr := reader.NextPart()
		if errors.Is(partErr, io.EOF) {
			break
		}
		if partErr != nil {
			fail(http.StatusBadRequest, "malformed multipart body")
			return
		}

		switch name := part.FormName(); name {
		case "title", "artist", "duration":
			value, readErr := readField(part)
			if readErr != nil {
				fail(http.StatusBadRequest, "malformed field "+name)
				return
			}
			switch name {
			case "title":
				title = value
			case "artist":
				artist = value
			case "duration":
				seconds, parseErr := strconv.ParseFloat(value, 64)
				if parseErr != nil || seconds < 0 {
					fail(http.StatusBadRequest, "duration must be a non-negative number")
					return
				}
				duration = &seconds
			}

		case "audio", "image":
			if (name == "audio" && audioBlobID != nil) || (name == "image" && imageBlobID != nil) {
				fail(http.StatusBadRequest, "duplicate "+name+" part")
				return
			}

			tags := map[string]string{"part": name}
			if title != "" {
				tags["title"] = title
			}
			if artist != "" {
				tags["artist"] = artist
			}

			blob, upErr := h.blobService.Upload(r.Context(), part, part.Header.Get("Content-Type"), part.FileName(), tags)
			if upErr != nil {
				h.logger.Error("failed to upload "+name+" blob", "error", upErr)
				fail(http.StatusInternalServerError, "storage failure")
				return
			}
			uploaded = append(uploaded, blob.ID)
			if name == "audio" {
				audioBlobID = &blob.ID
			} else {
				imageBlobID = &blob.ID
			}

		default:
			// Unknown parts are drained and ignored.
			io.Copy(io.Discard, part)
		}
	}

	switch {
	case audioBlobID == nil:
		fail(http.StatusBadRequest, "audio part is required")
		return
	case imageBlobID == nil:
		fail(http.StatusBadRequest, "image part is required")
		return
	case strings.TrimSpace(title) == "":
		fail(http.StatusBadRequest, "title is required")
		return
	case strings.TrimSpace(artist) == "":
		fail(http.StatusBadRequest, "artist is required")
		return
	}

	asset, err := h.catalogService.CreateAsset(r.Context(), title, artist, duration, *audioBlobID, *imageBlobID)
	if err != nil {
		h.logger.Error("failed to create asset", "error", err)
		fail(http.StatusInternalServerError, "storage failure")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toAssetResponse(asset)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func readField(part io.Reader) (string, error) {
	value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(value)), nil
}
