package model

import (
	"time"

	gDto "adboard/shared/dto"
	"adboard/shared/model"
)

const (
	SessionTableName  = "cart_sessions"
	SessionEntityName = "cart_session"

	FieldSessionID    = "id"
	FieldUserID       = "user_id"
	FieldSessionToken = "session_token"
	FieldExpiresAt    = "expires_at"
	FieldIsActive     = "is_active"
)

// Session is a user's single time-boxed cart. At most one active,
// unexpired session per user is honored; expired or deactivated rows are
// kept for audit and excluded from lookups.
type Session struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	SessionToken string    `db:"session_token"`
	ExpiresAt    time.Time `db:"expires_at"`
	IsActive     bool      `db:"is_active"`
	model.Metadata
}

// ActiveSessionFilter selects the user's single honored cart session:
// active and strictly not yet expired.
func ActiveSessionFilter(userID string, now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    SessionTableName,
			},
			gDto.Filter{
				Field:    FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    SessionTableName,
			},
			gDto.Filter{
				Field:    FieldExpiresAt,
				Operator: gDto.FilterOperatorGreater,
				Value:    now,
				Table:    SessionTableName,
			},
		},
	}
}
