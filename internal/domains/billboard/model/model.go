package model

import "adboard/shared/model"

const (
	TableName  = "billboards"
	EntityName = "billboard"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldImage       = "image"
	FieldPricePerDay = "price_per_day"
	FieldActive      = "active"
)

type Billboard struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Location    string  `db:"location"`
	Image       string  `db:"image"`
	PricePerDay float64 `db:"price_per_day"`
	Active      bool    `db:"active"`
	model.Metadata
}
