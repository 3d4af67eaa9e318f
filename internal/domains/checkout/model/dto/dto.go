package dto

// ReasonUnavailable is the caller-visible reason attached to every stale
// cart item found during checkout validation.
const ReasonUnavailable = "No longer available for selected dates"

type InvalidItem struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// ValidateResponse distinguishes an empty cart (valid=false, no invalid
// items) from a cart with stale items.
type ValidateResponse struct {
	Valid        bool          `json:"valid"`
	InvalidItems []InvalidItem `json:"invalid_items"`
}

// CommitResponse reports partial success explicitly: Success is true when
// at least one booking was created, even if other items failed. Callers
// must inspect Errors to detect partial failure.
type CommitResponse struct {
	Success    bool     `json:"success"`
	BookingIDs []string `json:"booking_ids,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// BookingCreatedEvent is the payload published for the downstream approval
// workflow after a booking row is committed.
type BookingCreatedEvent struct {
	BookingID   string  `json:"booking_id"`
	BillboardID string  `json:"billboard_id"`
	UserID      string  `json:"user_id"`
	SideBooked  string  `json:"side_booked"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	FinalAmount float64 `json:"final_amount"`
}
