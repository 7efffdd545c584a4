package port

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
)

// EventPublisher is an interface to define the outbound asset lifecycle
// feed (nats, kafka, ...). Publishing is advisory: consumers use it to
// invalidate local caches, so a failed publish must never fail the
// operation that triggered it.
type EventPublisher interface {
	PublishAssetEvent(ctx context.Context, event domain.AssetEvent) error
	Close() error
}
