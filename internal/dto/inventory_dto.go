package dto

// ─── Adjustments ─────────────────────────────────────────────────────────────

// AdjustInventoryRequest applies an explicit signed delta to currentStock.
// FieldLocation, when set, overrides the location tag on the history row
// (used for Wholesale / Kitchen adjustments).
type AdjustInventoryRequest struct {
	ProductID     string  `json:"productId"     validate:"required,uuid"`
	Change        int     `json:"change"        validate:"required"`
	UpdatedBy     string  `json:"updatedBy"     validate:"max=80"`
	FieldLocation *string `json:"fieldLocation" validate:"omitempty,max=80"`
}

type AdjustInventoryResponse struct {
	ProductID       string `json:"productId"`
	PreviousStock   int    `json:"previousStock"`
	RequestedChange int    `json:"requestedChange"`
	AppliedChange   int    `json:"appliedChange"`
	NewStock        int    `json:"newStock"`
	Clamped         bool   `json:"clamped"`
}

// ─── History ─────────────────────────────────────────────────────────────────

type HistoryFilter struct {
	StartDate               string `form:"startDate"`
	EndDate                 string `form:"endDate"`
	ProductID               string `form:"productId" validate:"omitempty,uuid"`
	IncludeWholesaleKitchen bool   `form:"includeWholesaleKitchen"`
	Page                    int    `form:"page,default=1"   validate:"min=1"`
	Limit                   int    `form:"limit,default=50" validate:"min=1,max=500"`
}

type HistoryEntryResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName,omitempty"`
	ChangedField  string `json:"changedField"`
	Location      string `json:"location"`
	FieldLocation string `json:"fieldLocation"` // display label: "<field> - <location>"
	PreviousValue int    `json:"previousValue"`
	Change        int    `json:"change"`
	NewValue      int    `json:"newValue"`
	UpdatedBy     string `json:"updatedBy"`
	CreatedAt     string `json:"createdAt"`
}

type HistoryListResponse struct {
	Data  []HistoryEntryResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// ─── Stock alerts ────────────────────────────────────────────────────────────

type StockAlertResponse struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	FieldLocation string `json:"fieldLocation"`
	CurrentStock  int    `json:"currentStock"`
	Level         string `json:"level"` // "low" | "critical"
}
