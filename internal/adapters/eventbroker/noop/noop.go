package noop

import (
	"context"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/core/domain"
)

// Publisher discards every event. It stands in when NATS is disabled so
// the catalog service never has to care whether a broker is configured.
type Publisher struct{}

// NewPublisher creates a Publisher that drops all events
func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) PublishAssetEvent(ctx context.Context, event domain.AssetEvent) error {
	return nil
}

func (p *Publisher) Close() error {
	return nil
}
