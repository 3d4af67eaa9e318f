package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"adboard/config"
	kafkaMocks "adboard/infras/kafka/mocks"
	"adboard/infras/otel/mocks"
	pubsubMocks "adboard/infras/pubsub/mocks"
	bookingMocks "adboard/internal/domains/booking/mocks"
	bookingModel "adboard/internal/domains/booking/model"
	bookingDto "adboard/internal/domains/booking/model/dto"
	cartMocks "adboard/internal/domains/cart/mocks"
	cartModel "adboard/internal/domains/cart/model"
	"adboard/internal/domains/checkout/model/dto"
	"adboard/internal/domains/checkout/service"
	"adboard/shared/constant"
	"adboard/shared/timezone"
)

const testUserID = "user-1"

func checkoutConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingCreated = "booking.created"

	return cfg
}

func activeSession() cartModel.Session {
	return cartModel.Session{
		ID:        "session-1",
		UserID:    testUserID,
		ExpiresAt: timezone.Now().Add(12 * time.Hour),
		IsActive:  true,
	}
}

func cartItem(id, side string) cartModel.Item {
	start, _ := timezone.Parse(constant.DateOnlyFormat, "2026-03-01")
	end, _ := timezone.Parse(constant.DateOnlyFormat, "2026-03-31")

	return cartModel.Item{
		ID:            id,
		CartSessionID: "session-1",
		BillboardID:   "billboard-1",
		StartDate:     start,
		EndDate:       end,
		TotalDays:     30,
		PricePerDay:   100,
		TotalAmount:   3000,
		SideBooked:    side,
	}
}

func sideAvailable(billboardID string) bookingDto.BillboardAvailability {
	return bookingDto.BillboardAvailability{
		BillboardID: billboardID,
		Available:   true,
		Sides: []bookingDto.SideAvailability{
			{Side: constant.SideSingle, Available: true},
			{Side: constant.SideA, Available: true},
			{Side: constant.SideB, Available: true},
			{Side: constant.SideBoth, Available: true},
		},
	}
}

func sideTaken(billboardID string) bookingDto.BillboardAvailability {
	return bookingDto.BillboardAvailability{
		BillboardID: billboardID,
		Available:   false,
		Sides: []bookingDto.SideAvailability{
			{Side: constant.SideSingle, Available: false},
			{Side: constant.SideA, Available: false},
			{Side: constant.SideB, Available: false},
			{Side: constant.SideBoth, Available: false},
		},
	}
}

type checkoutFixture struct {
	sessionRepo  *cartMocks.MockSession
	itemRepo     *cartMocks.MockItem
	bookingRepo  *bookingMocks.MockBooking
	availability *bookingMocks.MockBookingService
	svc          service.Checkout
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := checkoutFixture{
		sessionRepo:  cartMocks.NewMockSession(ctrl),
		itemRepo:     cartMocks.NewMockItem(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		availability: bookingMocks.NewMockBookingService(ctrl),
	}

	f.svc = service.New(
		f.sessionRepo,
		f.itemRepo,
		f.bookingRepo,
		f.availability,
		checkoutConfig(),
		pubsubMocks.NewCartEvents(),
		kafkaMocks.NewClient(),
		mocks.NewOtel(),
	)

	return f
}

func (f checkoutFixture) expectCart(times int, items ...cartModel.Item) {
	f.sessionRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeSession(), nil).
		Times(times)
	f.itemRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(items, nil).
		Times(times)
}

func TestCheckoutService_Validate(t *testing.T) {
	t.Run("empty cart is not valid", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.sessionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cartModel.Session{}, nil)

		res, err := f.svc.Validate(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Empty(t, res.InvalidItems)
	})

	t.Run("all items still available", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(1, cartItem("item-1", constant.SideA), cartItem("item-2", constant.SideB))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideAvailable("billboard-1"), nil).
			Times(2)

		res, err := f.svc.Validate(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.InvalidItems)
	})

	t.Run("stale item is flagged without touching the cart", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(1, cartItem("item-1", constant.SideA), cartItem("item-2", constant.SideB))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideTaken("billboard-1"), nil)
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideAvailable("billboard-1"), nil)

		res, err := f.svc.Validate(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, []dto.InvalidItem{{ItemID: "item-1", Reason: dto.ReasonUnavailable}}, res.InvalidItems)
	})

	t.Run("availability failure marks the item invalid", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(1, cartItem("item-1", constant.SideSingle))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(bookingDto.BillboardAvailability{}, errors.New("availability unreachable"))

		res, err := f.svc.Validate(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Len(t, res.InvalidItems, 1)
	})
}

func TestCheckoutService_Commit(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.sessionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cartModel.Session{}, nil)

		res, err := f.svc.Commit(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Cart is empty"}, res.Errors)
	})

	t.Run("stale item aborts the whole commit", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(2, cartItem("item-1", constant.SideA))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideTaken("billboard-1"), nil)

		res, err := f.svc.Commit(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.BookingIDs)
		assert.Equal(t, []string{"item item-1: " + dto.ReasonUnavailable}, res.Errors)
	})

	t.Run("full success freezes items into gst-inclusive bookings", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(2, cartItem("item-1", constant.SideA))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideAvailable("billboard-1"), nil)
		f.bookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking bookingModel.Booking) error {
				assert.Equal(t, testUserID, booking.UserID)
				assert.Equal(t, constant.SideA, booking.SideBooked)
				assert.Equal(t, 3000.0, booking.TotalAmount)
				assert.InDelta(t, 540.0, booking.GSTAmount, 0.001)
				assert.InDelta(t, 3540.0, booking.FinalAmount, 0.001)
				assert.Equal(t, constant.BookingStatusPending, booking.Status)
				assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)

				return nil
			})
		f.sessionRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, false, fields[cartModel.FieldIsActive])

				return nil
			})

		res, err := f.svc.Commit(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.BookingIDs, 1)
		assert.Empty(t, res.Errors)
	})

	t.Run("race loser on the overlap constraint reads as stale", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(2, cartItem("item-1", constant.SideA), cartItem("item-2", constant.SideB))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideAvailable("billboard-1"), nil).
			Times(2)
		f.bookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
		f.bookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		f.sessionRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Commit(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, res.BookingIDs, 1)
		assert.Equal(t, []string{"item item-1: " + dto.ReasonUnavailable}, res.Errors)
	})

	t.Run("every insert failing is not a success", func(t *testing.T) {
		f := newCheckoutFixture(t)

		f.expectCart(2, cartItem("item-1", constant.SideA))
		f.availability.EXPECT().
			ResolveAvailability(gomock.Any(), "billboard-1", gomock.Any(), gomock.Any()).
			Return(sideAvailable("billboard-1"), nil)
		f.bookingRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		res, err := f.svc.Commit(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.BookingIDs)
		assert.Equal(t, []string{"item item-1: failed to create booking"}, res.Errors)
	})
}
