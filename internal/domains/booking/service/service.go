package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"adboard/config"
	"adboard/infras/otel"
	billboardModel "adboard/internal/domains/billboard/model"
	billboardRepo "adboard/internal/domains/billboard/repository"
	"adboard/internal/domains/booking/model"
	"adboard/internal/domains/booking/model/dto"
	"adboard/internal/domains/booking/repository"
	"adboard/shared"
	"adboard/shared/cache"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// blockingStatuses are the booking states that occupy a physical slot.
var blockingStatuses = []string{
	constant.BookingStatusPending,
	constant.BookingStatusApproved,
	constant.BookingStatusActive,
}

type Booking interface {
	ResolveAvailability(ctx context.Context, billboardID string, startDate, endDate time.Time) (dto.BillboardAvailability, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	sideRepo billboardRepo.Side
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, sideRepo billboardRepo.Side, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		sideRepo: sideRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// sidesConflict reports whether a booking for booked blocks a request for
// requested. BOTH claims the combined slot, so it conflicts with either
// individual side and vice versa.
func sidesConflict(requested, booked string) bool {
	if requested == booked {
		return true
	}

	if requested == constant.SideBoth && (booked == constant.SideA || booked == constant.SideB) {
		return true
	}

	if booked == constant.SideBoth && (requested == constant.SideA || requested == constant.SideB) {
		return true
	}

	return false
}

// ResolveAvailability reports which sides of a billboard are free of
// overlapping blocking bookings over [startDate, endDate], inclusive on
// both ends. The result is recomputed on every call and cached nowhere.
//
// When the booking store is unreachable and the fail-open policy is active,
// the resolver returns the optimistic SINGLE-available result instead of an
// error so read paths never block on a storage outage.
func (s *serviceImpl) ResolveAvailability(ctx context.Context, billboardID string, startDate, endDate time.Time) (res dto.BillboardAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	sideIdentifiers, err := s.enumerateSides(ctx, billboardID)
	if err != nil {
		return s.failOpen(billboardID, err)
	}

	overlapping, err := s.repo.GetAll(ctx, gDto.QueryParams{}, overlapFilter(billboardID, startDate, endDate))
	if err != nil {
		return s.failOpen(billboardID, err)
	}

	res = dto.BillboardAvailability{BillboardID: billboardID}

	for _, side := range sideIdentifiers {
		available := true

		for _, booking := range overlapping {
			if sidesConflict(side, booking.SideBooked) {
				available = false

				break
			}
		}

		res.Sides = append(res.Sides, dto.SideAvailability{Side: side, Available: available})

		switch side {
		case constant.SideA:
			res.SideAAvailable = available
		case constant.SideB:
			res.SideBAvailable = available
		case constant.SideSingle:
			res.SingleSideAvailable = available
		}

		if available {
			res.Available = true
		}
	}

	return res, nil
}

// enumerateSides lists the bookable side identifiers of a billboard. A
// billboard without side rows is one-sided and exposes the implicit SINGLE
// side; a billboard with both A and B also exposes the combined BOTH slot.
func (s *serviceImpl) enumerateSides(ctx context.Context, billboardID string) ([]string, error) {
	sides, err := s.sideRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(billboardID, billboardModel.FieldSideBillboardID, billboardModel.SideTableName))
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate billboard sides: %w", err)
	}

	if len(sides) == 0 {
		return []string{constant.SideSingle}, nil
	}

	identifiers := make([]string, 0, len(sides)+1)
	hasA, hasB := false, false

	for _, side := range sides {
		identifiers = append(identifiers, side.SideIdentifier)

		switch side.SideIdentifier {
		case constant.SideA:
			hasA = true
		case constant.SideB:
			hasB = true
		}
	}

	if hasA && hasB {
		identifiers = append(identifiers, constant.SideBoth)
	}

	return identifiers, nil
}

func (s *serviceImpl) failOpen(billboardID string, cause error) (dto.BillboardAvailability, error) {
	if !s.cfg.App.Availability.FailOpen {
		return dto.BillboardAvailability{}, fmt.Errorf("failed to resolve availability: %w", cause)
	}

	log.Warn().Err(cause).Str("billboardID", billboardID).Msg("availability lookup failed, returning optimistic result")

	return dto.OptimisticAvailability(billboardID), nil
}

// overlapFilter selects blocking bookings whose interval overlaps the
// requested range: existing.start <= requested.end AND existing.end >=
// requested.start.
func overlapFilter(billboardID string, startDate, endDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBillboardID,
				Operator: gDto.FilterOperatorEq,
				Value:    billboardID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    blockingStatuses,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				ArgName:  "overlap_end",
				Operator: gDto.FilterOperatorLessEq,
				Value:    endDate,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				ArgName:  "overlap_start",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startDate,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}
