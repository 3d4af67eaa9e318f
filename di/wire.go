//go:build wireinject
// +build wireinject

package di

import (
	"adboard/config"
	"adboard/infras/jwt"
	"adboard/infras/kafka"
	"adboard/infras/otel"
	"adboard/infras/postgres"
	"adboard/infras/pubsub"
	"adboard/infras/redis"
	"adboard/infras/s3"
	"adboard/permissions"
	"adboard/shared/cache"
	"adboard/transport/http"
	"adboard/transport/http/middleware"
	"adboard/transport/http/router"

	billboardRepository "adboard/internal/domains/billboard/repository"
	billboardService "adboard/internal/domains/billboard/service"
	bookingRepository "adboard/internal/domains/booking/repository"
	bookingService "adboard/internal/domains/booking/service"
	cartRepository "adboard/internal/domains/cart/repository"
	cartService "adboard/internal/domains/cart/service"
	checkoutService "adboard/internal/domains/checkout/service"

	eventsWorker "adboard/internal/workers/events"

	billboardHandler "adboard/internal/handlers/billboard"
	bookingHandler "adboard/internal/handlers/booking"
	cartHandler "adboard/internal/handlers/cart"
	checkoutHandler "adboard/internal/handlers/checkout"
	healthHandler "adboard/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	pubsub.NewCartEvents,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var billboardDomain = wire.NewSet(
	billboardRepository.New,
	billboardRepository.NewSide,
	billboardService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.NewSession,
	cartRepository.NewItem,
	cartService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutService.New,
)

var domains = wire.NewSet(
	billboardDomain,
	bookingDomain,
	cartDomain,
	checkoutDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	billboardHandler.New,
	bookingHandler.New,
	cartHandler.New,
	checkoutHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeEventsWorker() *eventsWorker.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		s3.New,
		pubsub.NewCartEvents,
		sharedHelpers,
		billboardDomain,
		eventsWorker.New,
	)

	return &eventsWorker.Worker{}
}
