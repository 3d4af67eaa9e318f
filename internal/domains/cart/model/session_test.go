package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"adboard/internal/domains/cart/model"
	gDto "adboard/shared/dto"
)

func TestActiveSessionFilter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	filter := model.ActiveSessionFilter("user-1", now)

	assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)
	assert.Len(t, filter.Filters, 3)

	byField := map[string]gDto.Filter{}
	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.SessionTableName, f.Table)
		byField[f.Field] = f
	}

	assert.Equal(t, "user-1", byField[model.FieldUserID].Value)
	assert.Equal(t, gDto.FilterOperatorEq, byField[model.FieldUserID].Operator)
	assert.Equal(t, true, byField[model.FieldIsActive].Value)

	// A session expiring exactly now is already expired: strict comparison.
	expiry := byField[model.FieldExpiresAt]
	assert.Equal(t, gDto.FilterOperatorGreater, expiry.Operator)
	assert.Equal(t, now, expiry.Value)

	clause, args := filter.GetWhereClause()
	assert.Contains(t, clause, "cart_sessions.expires_at > :expires_at")
	assert.Equal(t, now, args["expires_at"])
}
