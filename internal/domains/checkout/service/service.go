package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"adboard/config"
	"adboard/infras/kafka"
	"adboard/infras/otel"
	"adboard/infras/pubsub"
	bookingModel "adboard/internal/domains/booking/model"
	bookingRepo "adboard/internal/domains/booking/repository"
	bookingService "adboard/internal/domains/booking/service"
	cartModel "adboard/internal/domains/cart/model"
	cartRepo "adboard/internal/domains/cart/repository"
	"adboard/internal/domains/checkout/model/dto"
	"adboard/shared"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"
	gModel "adboard/shared/model"
	"adboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Checkout interface {
	Validate(ctx context.Context, userID string) (dto.ValidateResponse, error)
	Commit(ctx context.Context, userID string) (dto.CommitResponse, error)
}

type serviceImpl struct {
	sessionRepo  cartRepo.Session
	itemRepo     cartRepo.Item
	bookingRepo  bookingRepo.Booking
	availability bookingService.Booking
	cfg          *config.Config
	events       pubsub.CartEvents
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	sessionRepo cartRepo.Session,
	itemRepo cartRepo.Item,
	bookingRepo bookingRepo.Booking,
	availability bookingService.Booking,
	cfg *config.Config,
	events pubsub.CartEvents,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		sessionRepo:  sessionRepo,
		itemRepo:     itemRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		cfg:          cfg,
		events:       events,
		kafka:        kafkaClient,
		otel:         otel,
	}
}

// loadCart returns the active session and its items. An absent or expired
// session reads as an empty cart, not an error.
func (s *serviceImpl) loadCart(ctx context.Context, userID string) (cartModel.Session, []cartModel.Item, error) {
	session, err := s.sessionRepo.Get(ctx, cartModel.ActiveSessionFilter(userID, timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up active cart session")

		return session, nil, fmt.Errorf("failed to look up active cart session: %w", err)
	}

	if session.ID == constant.Empty {
		return session, nil, nil
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(session.ID, cartModel.FieldCartSessionID, cartModel.ItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load cart items")

		return session, nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	return session, items, nil
}

// Validate re-resolves availability for every item in the active cart
// against current bookings. It is a pure read: no cart state is touched,
// items flagged stale remain in the cart for the user to fix or drop.
func (s *serviceImpl) Validate(ctx context.Context, userID string) (res dto.ValidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.InvalidItems = []dto.InvalidItem{}

	session, items, err := s.loadCart(ctx, userID)
	if err != nil {
		return res, err
	}

	if session.ID == constant.Empty || len(items) == 0 {
		return res, nil
	}

	for _, item := range items {
		availability, availErr := s.availability.ResolveAvailability(ctx, item.BillboardID, item.StartDate, item.EndDate)
		if availErr != nil || !availability.SideAvailable(item.SideBooked) {
			res.InvalidItems = append(res.InvalidItems, dto.InvalidItem{
				ItemID: item.ID,
				Reason: dto.ReasonUnavailable,
			})
		}
	}

	res.Valid = len(res.InvalidItems) == 0

	return res, nil
}

// Commit converts every cart item into a booking row. Items are committed
// independently: one failed insert is reported in Errors and does not roll
// back the others. The session is deactivated when at least one booking
// was created.
func (s *serviceImpl) Commit(ctx context.Context, userID string) (res dto.CommitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, items, err := s.loadCart(ctx, userID)
	if err != nil {
		return res, err
	}

	if session.ID == constant.Empty || len(items) == 0 {
		res.Errors = append(res.Errors, "Cart is empty")

		return res, nil
	}

	validation, err := s.Validate(ctx, userID)
	if err != nil {
		return res, err
	}

	if !validation.Valid {
		for _, invalid := range validation.InvalidItems {
			res.Errors = append(res.Errors, fmt.Sprintf("item %s: %s", invalid.ItemID, invalid.Reason))
		}

		return res, nil
	}

	created := make([]bookingModel.Booking, 0, len(items))

	for _, item := range items {
		booking := buildBooking(session, item, userID)

		if insertErr := s.bookingRepo.Insert(ctx, booking); insertErr != nil {
			log.Error().Err(insertErr).Str("itemID", item.ID).Msg("failed to commit cart item to booking")

			res.Errors = append(res.Errors, commitErrorMessage(item, insertErr))

			continue
		}

		created = append(created, booking)
		res.BookingIDs = append(res.BookingIDs, booking.ID)
	}

	res.Success = len(res.BookingIDs) > 0

	if res.Success {
		if deactivateErr := s.deactivateSession(ctx, session.ID, userID); deactivateErr != nil {
			res.Errors = append(res.Errors, "cart session could not be closed")
		}

		s.publishBookingCreated(ctx, created)
		s.notifyCartChanged(ctx, userID)
	}

	return res, nil
}

// buildBooking freezes a cart item into a booking row with GST applied on
// top of the stored subtotal.
func buildBooking(session cartModel.Session, item cartModel.Item, userID string) bookingModel.Booking {
	gstAmount := item.TotalAmount * constant.GSTRate

	return bookingModel.Booking{
		ID:            uuid.NewString(),
		BillboardID:   item.BillboardID,
		UserID:        session.UserID,
		StartDate:     item.StartDate,
		EndDate:       item.EndDate,
		TotalDays:     item.TotalDays,
		PricePerDay:   item.PricePerDay,
		TotalAmount:   item.TotalAmount,
		GSTAmount:     gstAmount,
		FinalAmount:   item.TotalAmount + gstAmount,
		Status:        constant.BookingStatusPending,
		PaymentStatus: constant.PaymentStatusPending,
		SideBooked:    item.SideBooked,
		CartSessionID: session.ID,
		AdContent:     item.AdContent,
		AdType:        item.AdType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// commitErrorMessage maps the exclusion constraint raised when a concurrent
// checkout claimed the overlapping span first to the stale-item reason, so
// the race loser sees the same message validation would have shown.
func commitErrorMessage(item cartModel.Item, err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return fmt.Sprintf("item %s: %s", item.ID, dto.ReasonUnavailable)
	}

	return fmt.Sprintf("item %s: failed to create booking", item.ID)
}

func (s *serviceImpl) deactivateSession(ctx context.Context, sessionID, userID string) error {
	updatedFields := map[string]any{
		cartModel.FieldIsActive:  false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.sessionRepo.Update(ctx, updatedFields, shared.FilterByID(sessionID, cartModel.FieldSessionID, cartModel.SessionTableName)); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to deactivate cart session")

		return fmt.Errorf("failed to deactivate cart session: %w", err)
	}

	return nil
}

// publishBookingCreated hands the committed bookings to the approval
// workflow. Delivery is async and best effort; the bookings are already
// durable in Postgres.
func (s *serviceImpl) publishBookingCreated(ctx context.Context, bookings []bookingModel.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		messages := make([]kafka.Message, 0, len(bookings))
		for _, booking := range bookings {
			messages = append(messages, kafka.Message{
				Key: booking.ID,
				Value: dto.BookingCreatedEvent{
					BookingID:   booking.ID,
					BillboardID: booking.BillboardID,
					UserID:      booking.UserID,
					SideBooked:  booking.SideBooked,
					StartDate:   booking.StartDate.Format(constant.DateOnlyFormat),
					EndDate:     booking.EndDate.Format(constant.DateOnlyFormat),
					FinalAmount: booking.FinalAmount,
				},
			})
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, messages...); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created events")
		}
	}()
}

func (s *serviceImpl) notifyCartChanged(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.PublishCartChanged(c, userID); err != nil {
			log.Error().Err(err).Str("userID", userID).Msg("failed to publish cart changed event")
		}
	}()
}
