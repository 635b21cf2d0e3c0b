package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string `json:"name"           validate:"required,min=1,max=120"`
	FieldLocation string `json:"fieldLocation"  validate:"max=80"`
	CurrentStock  int    `json:"currentStock"`

	StandInventory string `json:"standInventory"`
	WashInventory  string `json:"washInventory"`
	HarvestBins    string `json:"harvestBins"`
	UnitsHarvested string `json:"unitsHarvested"`
	CropNeeds      string `json:"cropNeeds"`

	FieldNotes  string           `json:"fieldNotes"`
	RetailNotes string           `json:"retailNotes"`
	RetailPrice *decimal.Decimal `json:"retailPrice"`

	UpdatedBy string `json:"updatedBy" validate:"max=80"`
}

// UpdateProductRequest is a partial update: nil pointers leave the stored
// value untouched, so the history diff only sees fields the client sent.
type UpdateProductRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1,max=120"`
	FieldLocation *string `json:"fieldLocation"  validate:"omitempty,max=80"`
	CurrentStock  *int    `json:"currentStock"`

	StandInventory *string `json:"standInventory"`
	WashInventory  *string `json:"washInventory"`
	HarvestBins    *string `json:"harvestBins"`
	UnitsHarvested *string `json:"unitsHarvested"`
	CropNeeds      *string `json:"cropNeeds"`

	FieldNotes  *string          `json:"fieldNotes"`
	RetailNotes *string          `json:"retailNotes"`
	RetailPrice *decimal.Decimal `json:"retailPrice"`

	UpdatedBy string `json:"updatedBy" validate:"max=80"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FieldLocation string `json:"fieldLocation"`
	CurrentStock  int    `json:"currentStock"`

	StandInventory string `json:"standInventory"`
	WashInventory  string `json:"washInventory"`
	HarvestBins    string `json:"harvestBins"`
	UnitsHarvested string `json:"unitsHarvested"`
	CropNeeds      string `json:"cropNeeds"`

	FieldNotes  string           `json:"fieldNotes"`
	RetailNotes string           `json:"retailNotes"`
	RetailPrice *decimal.Decimal `json:"retailPrice"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ProductListResponse returns all products in persisted row order.
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
