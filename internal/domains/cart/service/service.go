package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"adboard/config"
	"adboard/infras/otel"
	"adboard/infras/pubsub"
	billboardModel "adboard/internal/domains/billboard/model"
	billboardRepo "adboard/internal/domains/billboard/repository"
	bookingService "adboard/internal/domains/booking/service"
	"adboard/internal/domains/cart/model"
	"adboard/internal/domains/cart/model/dto"
	"adboard/internal/domains/cart/repository"
	"adboard/shared"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"
	"adboard/shared/failure"
	gModel "adboard/shared/model"
	"adboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	GetOrCreateActiveSession(ctx context.Context, userID string) (string, error)
	GetCart(ctx context.Context, userID string) (dto.CartResponse, bool)
	GetItemCount(ctx context.Context, userID string) int
	AddItem(ctx context.Context, userID string, req dto.AddItemRequest) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	UpdateItemDates(ctx context.Context, userID, itemID string, req dto.UpdateItemDatesRequest) error
}

type serviceImpl struct {
	sessionRepo   repository.Session
	itemRepo      repository.Item
	billboardRepo billboardRepo.Billboard
	availability  bookingService.Booking
	cfg           *config.Config
	events        pubsub.CartEvents
	otel          otel.Otel
}

func New(
	sessionRepo repository.Session,
	itemRepo repository.Item,
	billboardRepo billboardRepo.Billboard,
	availability bookingService.Booking,
	cfg *config.Config,
	events pubsub.CartEvents,
	otel otel.Otel,
) Cart {
	return &serviceImpl{
		sessionRepo:   sessionRepo,
		itemRepo:      itemRepo,
		billboardRepo: billboardRepo,
		availability:  availability,
		cfg:           cfg,
		events:        events,
		otel:          otel,
	}
}

func sessionItemsFilter(sessionID string) gDto.FilterGroup {
	return shared.FilterByID(sessionID, model.FieldCartSessionID, model.ItemTableName)
}

// GetOrCreateActiveSession returns the user's active cart session, creating
// one lazily when none exists or the existing one has expired. Repeated
// calls within the expiry window return the same session id.
//
// Two concurrent first calls for the same user may each create a session;
// single-session-per-user is not enforced at the storage layer.
func (s *serviceImpl) GetOrCreateActiveSession(ctx context.Context, userID string) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreateActiveSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.sessionRepo.Get(ctx, model.ActiveSessionFilter(userID, timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up active cart session")

		return constant.Empty, fmt.Errorf("failed to look up active cart session: %w", err)
	}

	if session.ID != constant.Empty {
		return session.ID, nil
	}

	session = model.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		SessionToken: uuid.NewString(),
		ExpiresAt:    timezone.Now().Add(time.Duration(s.cfg.App.Cart.SessionTTLHours) * time.Hour),
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.sessionRepo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create cart session")

		return constant.Empty, fmt.Errorf("failed to create cart session: %w", err)
	}

	return session.ID, nil
}

// GetCart loads the active session with its items, enriched with billboard
// display data. It fails soft: any lookup failure or missing session reads
// as an absent cart so guest-facing surfaces never error.
func (s *serviceImpl) GetCart(ctx context.Context, userID string) (res dto.CartResponse, found bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCart")
	defer scope.End()

	session, err := s.sessionRepo.Get(ctx, model.ActiveSessionFilter(userID, timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up active cart session")

		return res, false
	}

	if session.ID == constant.Empty {
		return res, false
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, sessionItemsFilter(session.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to load cart items")

		return res, false
	}

	res.FromModels(session, items)

	return res, true
}

// GetItemCount reports the number of items in the active session; a missing
// session or an unreachable store both read as zero, never an error.
func (s *serviceImpl) GetItemCount(ctx context.Context, userID string) int {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItemCount")
	defer scope.End()

	session, err := s.sessionRepo.Get(ctx, model.ActiveSessionFilter(userID, timezone.Now()))
	if err != nil || session.ID == constant.Empty {
		return 0
	}

	count, err := s.itemRepo.Count(ctx, sessionItemsFilter(session.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to count cart items")

		return 0
	}

	return count
}

func (s *serviceImpl) AddItem(ctx context.Context, userID string, req dto.AddItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Dates()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !end.After(start) {
		return failure.InvalidDateRange // nolint:wrapcheck
	}

	sessionID, err := s.GetOrCreateActiveSession(ctx, userID)
	if err != nil {
		return err
	}

	duplicate, err := s.itemRepo.Exist(ctx, duplicateItemFilter(sessionID, req.BillboardID, req.Side, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate cart item")

		return fmt.Errorf("failed to check for duplicate cart item: %w", err)
	}

	if duplicate {
		return ErrDuplicateItem
	}

	pricePerDay, err := s.effectivePrice(ctx, req)
	if err != nil {
		return err
	}

	item := req.ToModel(sessionID, start, end, pricePerDay, userID)

	// Advisory snapshot only: a conflicting item may still be added, the
	// authoritative check runs again at checkout.
	if availability, availErr := s.availability.ResolveAvailability(ctx, req.BillboardID, start, end); availErr == nil {
		item.IsAvailable = availability.SideAvailable(req.Side)
		item.AvailabilityCheckedAt = timezone.Now()
	}

	if err = s.itemRepo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to add cart item")

		return fmt.Errorf("failed to add cart item: %w", err)
	}

	s.notifyCartChanged(ctx, userID)

	return nil
}

func (s *serviceImpl) effectivePrice(ctx context.Context, req dto.AddItemRequest) (float64, error) {
	if req.PricePerDay != nil {
		return *req.PricePerDay, nil
	}

	billboard, err := s.billboardRepo.Get(ctx, shared.FilterByID(req.BillboardID, billboardModel.FieldID, billboardModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("billboardID", req.BillboardID).Msg("failed to look up billboard price")

		return 0, ErrPricingUnavailable
	}

	if billboard.ID == constant.Empty {
		return 0, failure.BadRequestFromString("billboard does not exist") // nolint:wrapcheck
	}

	return billboard.PricePerDay, nil
}

func (s *serviceImpl) RemoveItem(ctx context.Context, userID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err = s.itemRepo.Delete(ctx, shared.FilterByID(item.ID, model.FieldItemID, model.ItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to remove cart item")

		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.notifyCartChanged(ctx, userID)

	return nil
}

// UpdateItemDates overwrites the span of an item and recomputes the derived
// total_days and total_amount from the frozen price_per_day.
func (s *serviceImpl) UpdateItemDates(ctx context.Context, userID, itemID string, req dto.UpdateItemDatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItemDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Dates()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !end.After(start) {
		return failure.InvalidDateRange // nolint:wrapcheck
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	totalDays := shared.TotalDays(start, end)

	updatedFields := map[string]any{
		model.FieldStartDate:     start,
		model.FieldEndDate:       end,
		model.FieldTotalDays:     totalDays,
		model.FieldTotalAmount:   float64(totalDays) * item.PricePerDay,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.itemRepo.Update(ctx, updatedFields, shared.FilterByID(item.ID, model.FieldItemID, model.ItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update cart item dates")

		return fmt.Errorf("failed to update cart item dates: %w", err)
	}

	s.notifyCartChanged(ctx, userID)

	return nil
}

// ownedItem loads an item and verifies it belongs to one of the requesting
// user's sessions before any mutation is allowed.
func (s *serviceImpl) ownedItem(ctx context.Context, userID, itemID string) (model.Item, error) {
	item, err := s.itemRepo.Get(ctx, shared.FilterByID(itemID, model.FieldItemID, model.ItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load cart item")

		return item, fmt.Errorf("failed to load cart item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("cart item not found") // nolint:wrapcheck
	}

	session, err := s.sessionRepo.Get(ctx, shared.FilterByID(item.CartSessionID, model.FieldSessionID, model.SessionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load owning cart session")

		return item, fmt.Errorf("failed to load owning cart session: %w", err)
	}

	if session.UserID != userID {
		return item, ErrItemNotOwned
	}

	return item, nil
}

func duplicateItemFilter(sessionID, billboardID, side string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCartSessionID,
				Operator: gDto.FilterOperatorEq,
				Value:    sessionID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemBillboardID,
				Operator: gDto.FilterOperatorEq,
				Value:    billboardID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldSideBooked,
				Operator: gDto.FilterOperatorEq,
				Value:    side,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Operator: gDto.FilterOperatorEq,
				Value:    start,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorEq,
				Value:    end,
				Table:    model.ItemTableName,
			},
		},
	}
}

// notifyCartChanged broadcasts the best-effort cart refresh signal after a
// successful mutation.
func (s *serviceImpl) notifyCartChanged(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.PublishCartChanged(c, userID); err != nil {
			log.Error().Err(err).Str("userID", userID).Msg("failed to publish cart changed event")
		}
	}()
}
