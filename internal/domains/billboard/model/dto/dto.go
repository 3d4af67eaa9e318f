package dto

import (
	"adboard/internal/domains/billboard/model"
	"adboard/shared"
	gDto "adboard/shared/dto"
)

type BillboardResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	PricePerDay float64  `json:"price_per_day"`
	Active      bool     `json:"active"`
	Sides       []string `json:"sides,omitempty"`
	gDto.Metadata
}

func (r *BillboardResponse) FromModel(mod model.Billboard, sides []model.Side) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Location = mod.Location
	r.Image = mod.Image
	r.PricePerDay = mod.PricePerDay
	r.Active = mod.Active

	for _, side := range sides {
		r.Sides = append(r.Sides, side.SideIdentifier)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBillboardsResponse struct {
	Billboards []BillboardResponse `json:"billboards"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetBillboardsResponse) FromModels(models []model.Billboard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Billboards = make([]BillboardResponse, len(models))
	for i, mod := range models {
		r.Billboards[i].FromModel(mod, nil)
	}
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
