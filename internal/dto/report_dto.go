package dto

import "github.com/shopspring/decimal"

// ReportFilter selects the replay window for the wash-inventory report.
// Dates are YYYY-MM-DD; EndDate is normalized to the end of that day.
type ReportFilter struct {
	StartDate               string `form:"startDate" validate:"required"`
	EndDate                 string `form:"endDate"   validate:"required"`
	ProductID               string `form:"productId" validate:"omitempty,uuid"`
	IncludeWholesaleKitchen bool   `form:"includeWholesaleKitchen"`
}

// ProductSummaryResponse is one reconstructed per-product line:
// Starting = Current - Added + Removed, derived by replaying the ledger.
type ProductSummaryResponse struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	FieldLocation string `json:"fieldLocation"`
	Starting      int    `json:"starting"`
	Added         int    `json:"added"`
	Removed       int    `json:"removed"`
	Current       int    `json:"current"`
	Level         string `json:"level"` // "ok" | "low" | "critical"

	// EstimatedValue = RetailPrice × Current, omitted when no price is set.
	EstimatedValue *decimal.Decimal `json:"estimatedValue,omitempty"`
}

type InventoryReportResponse struct {
	StartDate   string                   `json:"startDate"`
	EndDate     string                   `json:"endDate"`
	GeneratedAt string                   `json:"generatedAt"`
	Summaries   []ProductSummaryResponse `json:"summaries"`
}
