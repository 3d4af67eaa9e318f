package pubsub

//go:generate go run go.uber.org/mock/mockgen -source=./pubsub.go -destination=./mocks/pubsub_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"adboard/infras/otel"
	"adboard/shared/constant"
	"adboard/shared/timezone"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	channelCartChanged = "adboard:cart:changed"

	otelAttrChannel = "pubsub.channel"
)

type cartChangedMsg struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	TsUnix int64  `json:"ts_unix"`
}

// CartEvents is the best-effort "cart changed" broadcast consumed by UI
// surfaces (badge, drawer). Delivery is not persisted and not guaranteed;
// consumers must also refresh on open.
type CartEvents interface {
	PublishCartChanged(ctx context.Context, userID string) error
	SubscribeCartChanged(ctx context.Context, handler func(ctx context.Context, userID string)) error
}

type cartEventsImpl struct {
	client *goRedis.Client
	otel   otel.Otel
}

func NewCartEvents(client *goRedis.Client, ot otel.Otel) CartEvents {
	return &cartEventsImpl{
		client: client,
		otel:   ot,
	}
}

func (p *cartEventsImpl) PublishCartChanged(ctx context.Context, userID string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelPubSubScopeName, constant.OtelPubSubScopeName+".PublishCartChanged")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrChannel, channelCartChanged)

	msg := cartChangedMsg{
		Type:   "cart_changed",
		UserID: userID,
		TsUnix: timezone.Now().Unix(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal cart changed message: %w", err)
	}

	if err = p.client.Publish(ctx, channelCartChanged, payload).Err(); err != nil {
		log.Error().Err(err).Str("channel", channelCartChanged).Msg("failed to publish cart changed message")

		return fmt.Errorf("failed to publish cart changed message: %w", err)
	}

	return nil
}

func (p *cartEventsImpl) SubscribeCartChanged(ctx context.Context, handler func(ctx context.Context, userID string)) error {
	sub := p.client.Subscribe(ctx, channelCartChanged)
	defer sub.Close()

	channel := sub.Channel(goRedis.WithChannelSize(256))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case msg, ok := <-channel:
			if !ok {
				return nil
			}

			var ev cartChangedMsg
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil || ev.UserID == constant.Empty {
				continue
			}

			handler(ctx, ev.UserID)
		}
	}
}
