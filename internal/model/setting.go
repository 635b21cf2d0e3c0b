package model

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known settings keys.
const (
	SettingRowOrder = "product_row_order"
)

// Setting is an opaque key → JSON value store. No schema validation beyond
// key uniqueness; callers own the shape of Value.
type Setting struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
