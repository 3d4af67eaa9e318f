package cart

import (
	"encoding/json"
	"net/http"

	"adboard/infras/otel"
	"adboard/internal/domains/cart/model/dto"
	"adboard/internal/domains/cart/service"
	"adboard/shared/constant"
	"adboard/shared/failure"
	"adboard/shared/validator"
	"adboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cart", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCart)
		routerGroup.Get("/count", handler.GetItemCount)
		routerGroup.Post("/items", handler.AddItem)
		routerGroup.Delete("/items/{id}", handler.RemoveItem)
		routerGroup.Patch("/items/{id}/dates", handler.UpdateItemDates)
	})
}

// GetCart retrieves the caller's active cart.
// @Summary Get the active cart
// @Description Retrieve the caller's active cart session with its items and derived totals.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CartResponse] "Cart contents"
// @Success 204 "No active cart"
// @Router /v1/cart [get]
// @Security BearerAuth
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cart, found := handler.service.GetCart(ctx, userID)
	if !found {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	scope.AddEvent("Cart retrieved successfully")

	response.WithJSON(w, http.StatusOK, cart)
}

// GetItemCount reports the number of items in the caller's active cart.
// @Summary Get the cart item count
// @Description Report the number of items in the caller's active cart; zero when no cart exists.
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ItemCountResponse] "Item count"
// @Router /v1/cart/count [get]
// @Security BearerAuth
func (handler *Handler) GetItemCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemCount")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	count := handler.service.GetItemCount(ctx, userID)

	response.WithJSON(w, http.StatusOK, dto.ItemCountResponse{Count: count})
}

// AddItem adds a billboard side and date range to the caller's cart.
// @Summary Add a cart item
// @Description Add a billboard side with a date range to the active cart, creating the cart when needed.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddItemRequest true "Item to add"
// @Success 201 {object} response.Message "Item added to cart"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid request body"))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.AddItem(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item added successfully by user " + userID)

	response.WithMessage(w, http.StatusCreated, "Item added to cart")
}

// RemoveItem removes an item from the caller's cart.
// @Summary Remove a cart item
// @Description Remove an item from the active cart by its ID.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} response.Message "Item removed from cart"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.RemoveItem(ctx, userID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item removed successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Item removed from cart")
}

// UpdateItemDates changes the booking dates of a cart item.
// @Summary Update cart item dates
// @Description Overwrite the date range of a cart item; total days and amount are recomputed from the frozen daily price.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body dto.UpdateItemDatesRequest true "New date range"
// @Success 200 {object} response.Message "Item dates updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id}/dates [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItemDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItemDates")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var req dto.UpdateItemDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid request body"))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateItemDates(ctx, userID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart item dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item dates updated successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Item dates updated")
}
