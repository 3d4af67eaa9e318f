package checkout

import (
	"net/http"

	"adboard/infras/otel"
	"adboard/internal/domains/checkout/service"
	"adboard/shared/constant"
	"adboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Post("/validate", handler.Validate)
		routerGroup.Post("/", handler.Commit)
	})
}

// Validate re-checks availability for every item in the caller's cart.
// @Summary Validate the cart for checkout
// @Description Re-resolve availability for every cart item against current bookings without mutating the cart.
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ValidateResponse] "Validation result"
// @Failure 500 {object} response.Error
// @Router /v1/checkout/validate [post]
// @Security BearerAuth
func (handler *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Validate")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Validate(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart validated for checkout")

	response.WithJSON(w, http.StatusOK, res)
}

// Commit converts the caller's cart items into booking records.
// @Summary Commit the cart to bookings
// @Description Create one booking per cart item with GST applied, deactivating the cart session on success. Partial success is reported per item.
// @Tags Checkout
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CommitResponse] "Checkout result"
// @Failure 500 {object} response.Error
// @Router /v1/checkout [post]
// @Security BearerAuth
func (handler *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Commit")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Commit(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to commit checkout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout committed by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}
