package service

// Static stock thresholds. Classification is recomputed on every read and
// never persisted.
const (
	criticalStockBelow = 5
	lowStockBelow      = 10
)

// defaultUpdatedBy stands in for a real per-user identity: the site has a
// single shared password, so ledger rows carry this placeholder unless the
// client names someone.
const defaultUpdatedBy = "Farm Admin"

// StockLevelOK, StockLevelLow and StockLevelCritical are the wire values for
// the derived stock classification.
const (
	StockLevelOK       = "ok"
	StockLevelLow      = "low"
	StockLevelCritical = "critical"
)

func classifyStock(stock int) string {
	switch {
	case stock < criticalStockBelow:
		return StockLevelCritical
	case stock < lowStockBelow:
		return StockLevelLow
	}
	return StockLevelOK
}
