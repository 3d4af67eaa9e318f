package model

import (
	"fmt"
	"time"

	billboardModel "adboard/internal/domains/billboard/model"
	"adboard/shared/model"
)

const (
	ItemTableName  = "cart_items"
	ItemEntityName = "cart_item"

	FieldItemID          = "id"
	FieldCartSessionID   = "cart_session_id"
	FieldItemBillboardID = "billboard_id"
	FieldBillboardSideID = "billboard_side_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldTotalDays       = "total_days"
	FieldPricePerDay     = "price_per_day"
	FieldTotalAmount     = "total_amount"
	FieldAdContent       = "ad_content"
	FieldAdType          = "ad_type"
	FieldSideBooked      = "side_booked"
	FieldAvailCheckedAt  = "availability_checked_at"
	FieldIsAvailable     = "is_available"
)

// Item is one candidate booking inside a session. Pricing is computed once
// at add time and frozen; IsAvailable is an advisory snapshot only, the
// authoritative check is re-run at checkout.
type Item struct {
	ID                    string    `db:"id"`
	CartSessionID         string    `db:"cart_session_id"`
	BillboardID           string    `db:"billboard_id"`
	BillboardSideID       *string   `db:"billboard_side_id"`
	StartDate             time.Time `db:"start_date"`
	EndDate               time.Time `db:"end_date"`
	TotalDays             int       `db:"total_days"`
	PricePerDay           float64   `db:"price_per_day"`
	TotalAmount           float64   `db:"total_amount"`
	AdContent             string    `db:"ad_content"`
	AdType                string    `db:"ad_type"`
	SideBooked            string    `db:"side_booked"`
	AvailabilityCheckedAt time.Time `db:"availability_checked_at"`
	IsAvailable           bool      `db:"is_available"`

	// Display enrichment joined from the billboard catalog at read time.
	BillboardTitle    string `db:"billboard_title"    table:"billboards" column:"title"`
	BillboardLocation string `db:"billboard_location" table:"billboards" column:"location"`
	BillboardImage    string `db:"billboard_image"    table:"billboards" column:"image"`

	model.Metadata
}

func (Item) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		billboardModel.TableName,
		billboardModel.TableName, billboardModel.FieldID,
		ItemTableName, FieldItemBillboardID,
	)
}
