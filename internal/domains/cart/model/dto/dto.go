package dto

import (
	"time"

	"adboard/internal/domains/cart/model"
	"adboard/shared"
	"adboard/shared/constant"
	gModel "adboard/shared/model"
	"adboard/shared/timezone"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	BillboardID     string   `json:"billboard_id"      validate:"required"`
	BillboardSideID *string  `json:"billboard_side_id" validate:"omitempty"`
	Side            string   `json:"side"              validate:"required,oneof=SINGLE A B BOTH"`
	StartDate       string   `json:"start_date"        validate:"required"`
	EndDate         string   `json:"end_date"          validate:"required"`
	AdContent       string   `json:"ad_content"        validate:"omitempty"`
	AdType          string   `json:"ad_type"           validate:"omitempty"`
	PricePerDay     *float64 `json:"price_per_day"     validate:"omitempty,gt=0"`
}

// Dates parses the calendar-date pair of the request.
func (r *AddItemRequest) Dates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, r.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, r.EndDate)

	return start, end, err
}

// ToModel builds the cart item with pricing computed once and frozen.
func (r *AddItemRequest) ToModel(sessionID string, start, end time.Time, pricePerDay float64, user string) model.Item {
	totalDays := shared.TotalDays(start, end)

	return model.Item{
		ID:                    uuid.NewString(),
		CartSessionID:         sessionID,
		BillboardID:           r.BillboardID,
		BillboardSideID:       r.BillboardSideID,
		StartDate:             start,
		EndDate:               end,
		TotalDays:             totalDays,
		PricePerDay:           pricePerDay,
		TotalAmount:           float64(totalDays) * pricePerDay,
		AdContent:             r.AdContent,
		AdType:                r.AdType,
		SideBooked:            r.Side,
		AvailabilityCheckedAt: timezone.Now(),
		IsAvailable:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemDatesRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

func (r *UpdateItemDatesRequest) Dates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, r.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, r.EndDate)

	return start, end, err
}

type ItemResponse struct {
	ID                    string  `json:"id"`
	BillboardID           string  `json:"billboard_id"`
	BillboardTitle        string  `json:"billboard_title"`
	BillboardLocation     string  `json:"billboard_location"`
	BillboardImage        string  `json:"billboard_image"`
	Side                  string  `json:"side"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	TotalDays             int     `json:"total_days"`
	PricePerDay           float64 `json:"price_per_day"`
	TotalAmount           float64 `json:"total_amount"`
	AdContent             string  `json:"ad_content"`
	AdType                string  `json:"ad_type"`
	IsAvailable           bool    `json:"is_available"`
	AvailabilityCheckedAt string  `json:"availability_checked_at"`
}

func (r *ItemResponse) FromModel(mod model.Item) {
	r.ID = mod.ID
	r.BillboardID = mod.BillboardID
	r.BillboardTitle = mod.BillboardTitle
	r.BillboardLocation = mod.BillboardLocation
	r.BillboardImage = mod.BillboardImage
	r.Side = mod.SideBooked
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.TotalDays = mod.TotalDays
	r.PricePerDay = mod.PricePerDay
	r.TotalAmount = mod.TotalAmount
	r.AdContent = mod.AdContent
	r.AdType = mod.AdType
	r.IsAvailable = mod.IsAvailable
	r.AvailabilityCheckedAt = timezone.Format(mod.AvailabilityCheckedAt, constant.DateFormat)
}

type CartResponse struct {
	SessionID   string         `json:"session_id"`
	ExpiresAt   string         `json:"expires_at"`
	Items       []ItemResponse `json:"items"`
	TotalItems  int            `json:"total_items"`
	TotalAmount float64        `json:"total_amount"`
}

// FromModels folds the aggregate totals from the owned items so the derived
// attributes can never drift from the item set.
func (r *CartResponse) FromModels(session model.Session, items []model.Item) {
	r.SessionID = session.ID
	r.ExpiresAt = timezone.Format(session.ExpiresAt, constant.DateFormat)
	r.Items = make([]ItemResponse, len(items))
	r.TotalItems = len(items)

	for i, item := range items {
		r.Items[i].FromModel(item)
		r.TotalAmount += item.TotalAmount
	}
}

type ItemCountResponse struct {
	Count int `json:"count"`
}
