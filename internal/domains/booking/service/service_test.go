package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"adboard/config"
	"adboard/infras/otel/mocks"
	billboardMocks "adboard/internal/domains/billboard/mocks"
	billboardModel "adboard/internal/domains/billboard/model"
	bookingMocks "adboard/internal/domains/booking/mocks"
	"adboard/internal/domains/booking/model"
	"adboard/internal/domains/booking/service"
	cacheMocks "adboard/shared/cache/mocks"
	"adboard/shared/constant"
)

func availabilityConfig(failOpen bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.Availability.FailOpen = failOpen
	cfg.Cache.TTL = 3600

	return cfg
}

func date(value string) time.Time {
	parsed, _ := time.Parse(constant.DateOnlyFormat, value)

	return parsed
}

func twoSides(billboardID string) []billboardModel.Side {
	return []billboardModel.Side{
		{ID: "side-a", BillboardID: billboardID, SideIdentifier: constant.SideA},
		{ID: "side-b", BillboardID: billboardID, SideIdentifier: constant.SideB},
	}
}

func TestBookingService_ResolveAvailability(t *testing.T) {
	const billboardID = "billboard-1"

	start := date("2026-03-01")
	end := date("2026-03-10")

	tests := []struct {
		name          string
		sides         []billboardModel.Side
		overlapping   []model.Booking
		wantAvailable bool
		wantSides     map[string]bool
	}{
		{
			name:          "one sided billboard with no bookings",
			sides:         nil,
			overlapping:   nil,
			wantAvailable: true,
			wantSides:     map[string]bool{constant.SideSingle: true},
		},
		{
			name:          "side A blocked leaves B and blocks BOTH",
			sides:         twoSides(billboardID),
			overlapping:   []model.Booking{{SideBooked: constant.SideA, Status: constant.BookingStatusPending}},
			wantAvailable: true,
			wantSides: map[string]bool{
				constant.SideA:    false,
				constant.SideB:    true,
				constant.SideBoth: false,
			},
		},
		{
			name:          "BOTH booking blocks every side",
			sides:         twoSides(billboardID),
			overlapping:   []model.Booking{{SideBooked: constant.SideBoth, Status: constant.BookingStatusActive}},
			wantAvailable: false,
			wantSides: map[string]bool{
				constant.SideA:    false,
				constant.SideB:    false,
				constant.SideBoth: false,
			},
		},
		{
			name:  "A and B bookings block BOTH but not each other",
			sides: twoSides(billboardID),
			overlapping: []model.Booking{
				{SideBooked: constant.SideA, Status: constant.BookingStatusApproved},
			},
			wantAvailable: true,
			wantSides: map[string]bool{
				constant.SideA:    false,
				constant.SideB:    true,
				constant.SideBoth: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockSideRepo := billboardMocks.NewMockSide(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			mockSideRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.sides, nil)
			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.overlapping, nil)

			svc := service.New(mockRepo, mockSideRepo, availabilityConfig(true), mockCache, mockOtel)

			res, err := svc.ResolveAvailability(context.Background(), billboardID, start, end)

			assert.NoError(t, err)
			assert.Equal(t, billboardID, res.BillboardID)
			assert.Equal(t, tt.wantAvailable, res.Available)

			for side, want := range tt.wantSides {
				assert.Equalf(t, want, res.SideAvailable(side), "side %s", side)
			}
		})
	}
}

func TestBookingService_ResolveAvailability_FailOpen(t *testing.T) {
	const billboardID = "billboard-1"

	start := date("2026-03-01")
	end := date("2026-03-10")

	t.Run("storage outage returns optimistic result when fail-open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bookingMocks.NewMockBooking(ctrl)
		mockSideRepo := billboardMocks.NewMockSide(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockOtel := mocks.NewOtel()

		mockSideRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := service.New(mockRepo, mockSideRepo, availabilityConfig(true), mockCache, mockOtel)

		res, err := svc.ResolveAvailability(context.Background(), billboardID, start, end)

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.True(t, res.SingleSideAvailable)
		assert.True(t, res.SideAvailable(constant.SideSingle))
	})

	t.Run("storage outage surfaces the error when fail-closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bookingMocks.NewMockBooking(ctrl)
		mockSideRepo := billboardMocks.NewMockSide(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockOtel := mocks.NewOtel()

		mockSideRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(twoSides(billboardID), nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := service.New(mockRepo, mockSideRepo, availabilityConfig(false), mockCache, mockOtel)

		_, err := svc.ResolveAvailability(context.Background(), billboardID, start, end)

		assert.Error(t, err)
	})
}

func TestBillboardAvailability_SideAvailable_UnknownSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockSideRepo := billboardMocks.NewMockSide(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	// One-sided billboard: only SINGLE exists, asking for A must read
	// unavailable rather than defaulting open.
	mockSideRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	svc := service.New(mockRepo, mockSideRepo, availabilityConfig(true), mockCache, mockOtel)

	res, err := svc.ResolveAvailability(context.Background(), "billboard-1", date("2026-03-01"), date("2026-03-05"))

	assert.NoError(t, err)
	assert.True(t, res.SideAvailable(constant.SideSingle))
	assert.False(t, res.SideAvailable(constant.SideA))
	assert.False(t, res.SideAvailable(constant.SideBoth))
}
