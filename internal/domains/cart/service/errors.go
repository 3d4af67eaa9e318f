package service

import (
	"net/http"

	"adboard/shared/failure"
)

var (
	// ErrDuplicateItem rejects an identical (billboard, dates, side) line
	// already present in the same session.
	ErrDuplicateItem = &failure.Failure{
		Code:    http.StatusConflict,
		Message: "This billboard is already in your cart for the selected dates and side",
	}

	// ErrPricingUnavailable is returned when no override price was given and
	// the billboard's own rate could not be looked up.
	ErrPricingUnavailable = &failure.Failure{
		Code:    http.StatusBadGateway,
		Message: "Billboard pricing is currently unavailable",
	}

	// ErrItemNotOwned rejects mutations of an item that belongs to another
	// user's session.
	ErrItemNotOwned = &failure.Failure{
		Code:    http.StatusForbidden,
		Message: "Cart item does not belong to the requesting user",
	}
)
