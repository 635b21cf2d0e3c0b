package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reserved pseudo-locations. Adjustments tagged with these are internal
// consumption, not field-grown retail stock, and are excluded from reports
// unless explicitly requested.
const (
	LocationWholesale = "Wholesale"
	LocationKitchen   = "Kitchen"
)

// HistoryEntry is one immutable record of a stock-affecting change. Entries
// are append-only: no update or delete path exists anywhere in the codebase.
//
// ProductID is a weak reference. Deleting a product leaves its entries in
// place, so the ledger can hold orphans.
type HistoryEntry struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	ChangedField  TrackedField `gorm:"not null;index"`
	Location      string       `gorm:"index"`
	PreviousValue int          `gorm:"not null"`
	Change        int          `gorm:"not null"` // signed; NewValue == PreviousValue + Change
	NewValue      int          `gorm:"not null"`
	UpdatedBy     string
	CreatedAt     time.Time `gorm:"index"`
}

func (HistoryEntry) TableName() string { return "history_entries" }

func (e *HistoryEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Label renders the composite string the UI shows in its history table,
// e.g. "Wash Inventory - North Field".
func (e *HistoryEntry) Label() string {
	if e.Location == "" {
		return e.ChangedField.DisplayName()
	}
	return e.ChangedField.DisplayName() + " - " + e.Location
}
