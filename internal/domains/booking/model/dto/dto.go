package dto

import (
	"adboard/internal/domains/booking/model"
	"adboard/shared"
	"adboard/shared/constant"
	gDto "adboard/shared/dto"
)

// SideAvailability is one entry of the per-side detail list returned by the
// availability resolver.
type SideAvailability struct {
	Side      string `json:"side"`
	Available bool   `json:"available"`
}

// BillboardAvailability is the query result of the availability resolver.
// It is recomputed on every query and cached nowhere.
type BillboardAvailability struct {
	BillboardID         string             `json:"billboard_id"`
	Available           bool               `json:"available"`
	SideAAvailable      bool               `json:"side_a_available"`
	SideBAvailable      bool               `json:"side_b_available"`
	SingleSideAvailable bool               `json:"single_side_available"`
	Sides               []SideAvailability `json:"sides"`
}

// SideAvailable reports whether the given side identifier is marked
// available in the detail list. Unknown sides are unavailable.
func (a *BillboardAvailability) SideAvailable(side string) bool {
	for _, detail := range a.Sides {
		if detail.Side == side {
			return detail.Available
		}
	}

	return false
}

// OptimisticAvailability is the fail-open result returned when the booking
// store cannot be reached: the single side reads available so optimistic UI
// paths are never blocked by a storage outage.
func OptimisticAvailability(billboardID string) BillboardAvailability {
	return BillboardAvailability{
		BillboardID:         billboardID,
		Available:           true,
		SingleSideAvailable: true,
		Sides: []SideAvailability{
			{Side: constant.SideSingle, Available: true},
		},
	}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	BillboardID   string  `json:"billboard_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	PricePerDay   float64 `json:"price_per_day"`
	TotalAmount   float64 `json:"total_amount"`
	GSTAmount     float64 `json:"gst_amount"`
	FinalAmount   float64 `json:"final_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	SideBooked    string  `json:"side_booked"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BillboardID = mod.BillboardID
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.TotalDays = mod.TotalDays
	r.PricePerDay = mod.PricePerDay
	r.TotalAmount = mod.TotalAmount
	r.GSTAmount = mod.GSTAmount
	r.FinalAmount = mod.FinalAmount
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.SideBooked = mod.SideBooked
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
