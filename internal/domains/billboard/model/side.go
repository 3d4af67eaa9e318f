package model

import "adboard/shared/model"

const (
	SideTableName  = "billboard_sides"
	SideEntityName = "billboard_side"

	FieldSideID          = "id"
	FieldSideBillboardID = "billboard_id"
	FieldSideIdentifier  = "side_identifier"
)

// Side is one physical face of a billboard. A one-sided billboard has no
// side rows at all; callers fall back to the implicit SINGLE side.
type Side struct {
	ID             string `db:"id"`
	BillboardID    string `db:"billboard_id"`
	SideIdentifier string `db:"side_identifier"`
	model.Metadata
}
