package mocks

import (
	"context"

	"adboard/infras/pubsub"
)

type cartEventsImpl struct {
}

// PublishCartChanged implements pubsub.CartEvents.
func (p *cartEventsImpl) PublishCartChanged(_ context.Context, _ string) error {
	return nil
}

// SubscribeCartChanged implements pubsub.CartEvents.
func (p *cartEventsImpl) SubscribeCartChanged(_ context.Context, _ func(ctx context.Context, userID string)) error {
	return nil
}

func NewCartEvents() pubsub.CartEvents {
	return &cartEventsImpl{}
}
