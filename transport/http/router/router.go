package router

import (
	_ "adboard/docs"
	"adboard/internal/handlers/billboard"
	"adboard/internal/handlers/booking"
	"adboard/internal/handlers/cart"
	"adboard/internal/handlers/checkout"
	"adboard/internal/handlers/health"
	"adboard/shared/constant"
	"adboard/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Billboard billboard.Handler
	Cart      cart.Handler
	Checkout  checkout.Handler
	Booking   booking.Handler
	Health    health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{constant.Asterix},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{constant.RequestHeaderAuthorization, constant.RequestHeaderContentType, constant.RequestHeaderAPIKey},
	}))
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Billboard.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
