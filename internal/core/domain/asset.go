package domain

import (
	"time"

	"github.com/google/uuid"
)

// Asset represents a catalog entry binding one audio blob and one
// cover-image blob with descriptive metadata. Assets are never mutated
// in place; replacing files means delete-then-recreate.
type Asset struct {
	ID              uuid.UUID
	Title           string
	Artist          string
	AudioBlobID     uuid.UUID
	ImageBlobID     uuid.UUID
	DurationSeconds *float64
	CreatedAt       time.Time
}
