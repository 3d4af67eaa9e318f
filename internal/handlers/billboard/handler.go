package billboard

import (
	"net/http"

	"adboard/infras/otel"
	"adboard/internal/domains/billboard/model"
	"adboard/internal/domains/billboard/service"
	bookingService "adboard/internal/domains/booking/service"
	"adboard/shared"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"
	"adboard/shared/failure"
	"adboard/shared/timezone"
	"adboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Billboard
	availability bookingService.Booking
	otel         otel.Otel
}

func New(service service.Billboard, availability bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billboards", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBillboards)
		routerGroup.Get("/{id}", handler.GetBillboardByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Post("/{id}/image", handler.UploadImage)
	})
}

// GetBillboards retrieves the billboard catalog.
// @Summary Get all billboards
// @Description Retrieve all billboards with optional filtering and pagination.
// @Tags Billboard
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetBillboardsResponse] "List of billboards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards [get]
func (handler *Handler) GetBillboards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillboards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    title,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	billboards, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billboards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboards retrieved successfully")

	response.WithJSON(w, http.StatusOK, billboards)
}

// GetBillboardByID retrieves a billboard with its defined sides.
// @Summary Get a billboard by ID
// @Description Retrieve a billboard by its unique identifier, including its sides.
// @Tags Billboard
// @Accept json
// @Produce json
// @Param id path string true "Billboard ID"
// @Success 200 {object} response.Data[dto.BillboardResponse] "Billboard details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id} [get]
func (handler *Handler) GetBillboardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillboardByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	billboard, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billboard by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, billboard)
}

// GetAvailability resolves per-side availability of a billboard over a date range.
// @Summary Get billboard availability
// @Description Resolve which sides of a billboard are free of blocking bookings over a date range.
// @Tags Billboard
// @Accept json
// @Produce json
// @Param id path string true "Billboard ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BillboardAvailability] "Availability per side"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	startDate, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamStartDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("start_date must be a valid YYYY-MM-DD date"))

		return
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, r.URL.Query().Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("end_date must be a valid YYYY-MM-DD date"))

		return
	}

	if !endDate.After(startDate) {
		err := failure.InvalidDateRange
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	availability, err := handler.availability.ResolveAvailability(ctx, id, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve billboard availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Billboard availability resolved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UploadImage attaches an image to a billboard.
// @Summary Upload a billboard image
// @Description Upload an image file for a billboard and store its public URL.
// @Tags Billboard
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Billboard ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Uploaded image URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billboards/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("image file is required"))

		return
	}
	defer file.Close()

	res, err := handler.service.UploadImage(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload billboard image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Billboard image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
