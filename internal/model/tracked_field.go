package model

import (
	"strconv"
	"strings"
)

// TrackedField identifies one of the numeric product fields whose changes are
// recorded in the stock history ledger. The set is fixed: diffing only ever
// looks at these six fields.
type TrackedField string

const (
	FieldCurrentStock   TrackedField = "current_stock"
	FieldStandInventory TrackedField = "stand_inventory"
	FieldWashInventory  TrackedField = "wash_inventory"
	FieldHarvestBins    TrackedField = "harvest_bins"
	FieldUnitsHarvested TrackedField = "units_harvested"
	FieldCropNeeds      TrackedField = "crop_needs"
)

// TrackedFields lists every field in the diffing whitelist, in the order the
// UI displays them.
var TrackedFields = []TrackedField{
	FieldCurrentStock,
	FieldStandInventory,
	FieldWashInventory,
	FieldHarvestBins,
	FieldUnitsHarvested,
	FieldCropNeeds,
}

// DisplayName returns the human-readable label used in history rows and
// report headers.
func (f TrackedField) DisplayName() string {
	switch f {
	case FieldCurrentStock:
		return "Current Stock"
	case FieldStandInventory:
		return "Stand Inventory"
	case FieldWashInventory:
		return "Wash Inventory"
	case FieldHarvestBins:
		return "Harvest Bins"
	case FieldUnitsHarvested:
		return "Units Harvested"
	case FieldCropNeeds:
		return "Crop Needs"
	}
	return string(f)
}

// Valid reports whether f is one of the six tracked fields.
func (f TrackedField) Valid() bool {
	switch f {
	case FieldCurrentStock, FieldStandInventory, FieldWashInventory,
		FieldHarvestBins, FieldUnitsHarvested, FieldCropNeeds:
		return true
	}
	return false
}

// Value returns the field's coerced integer value from p. ok is false only
// when the stored string is non-empty and non-numeric; an empty field coerces
// to 0 like a missing one.
func (f TrackedField) Value(p *Product) (int, bool) {
	switch f {
	case FieldCurrentStock:
		return p.CurrentStock, true
	case FieldStandInventory:
		return CoerceQuantity(p.StandInventory)
	case FieldWashInventory:
		return CoerceQuantity(p.WashInventory)
	case FieldHarvestBins:
		return CoerceQuantity(p.HarvestBins)
	case FieldUnitsHarvested:
		return CoerceQuantity(p.UnitsHarvested)
	case FieldCropNeeds:
		return CoerceQuantity(p.CropNeeds)
	}
	return 0, false
}

// CoerceQuantity converts a string-typed quantity field to an integer.
// Empty (or all-whitespace) values count as 0; anything else must parse as a
// base-10 integer or ok is false and the caller skips the field.
func CoerceQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
