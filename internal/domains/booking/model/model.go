package model

import (
	"time"

	"adboard/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBillboardID   = "billboard_id"
	FieldUserID        = "user_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldTotalDays     = "total_days"
	FieldPricePerDay   = "price_per_day"
	FieldTotalAmount   = "total_amount"
	FieldGSTAmount     = "gst_amount"
	FieldFinalAmount   = "final_amount"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldSideBooked    = "side_booked"
	FieldCartSessionID = "cart_session_id"
	FieldAdContent     = "ad_content"
	FieldAdType        = "ad_type"
)

// Booking is the persisted outcome of checkout, one row per committed cart
// item. This service only ever creates rows; status transitions belong to
// the approval workflow.
type Booking struct {
	ID            string    `db:"id"`
	BillboardID   string    `db:"billboard_id"`
	UserID        string    `db:"user_id"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	TotalDays     int       `db:"total_days"`
	PricePerDay   float64   `db:"price_per_day"`
	TotalAmount   float64   `db:"total_amount"`
	GSTAmount     float64   `db:"gst_amount"`
	FinalAmount   float64   `db:"final_amount"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	SideBooked    string    `db:"side_booked"`
	CartSessionID string    `db:"cart_session_id"`
	AdContent     string    `db:"ad_content"`
	AdType        string    `db:"ad_type"`
	model.Metadata
}
