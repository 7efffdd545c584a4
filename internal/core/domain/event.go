package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetEventType is a type that represents the kind of an asset lifecycle event
type AssetEventType string

const (
	AssetEventCreated AssetEventType = "created"
	AssetEventDeleted AssetEventType = "deleted"
)

// AssetEvent is a notification about an asset lifecycle change. Deleted
// events carry both blob ids so client-side caches can evict the bytes.
type AssetEvent struct {
	Event       AssetEventType `json:"event"`
	AssetID     uuid.UUID      `json:"asset_id"`
	AudioBlobID uuid.UUID      `json:"audio_blob_id"`
	ImageBlobID uuid.UUID      `json:"image_blob_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
