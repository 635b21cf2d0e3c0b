package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is one crop tracked in the washshed inventory. The quantity fields
// other than CurrentStock are stored as strings because the UI lets the crew
// leave them blank or type free-form values; CoerceQuantity defines how they
// are read arithmetically.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index;not null"`
	FieldLocation string    `gorm:"index"` // joined to field_locations by name, not id
	CurrentStock  int       `gorm:"not null;default:0"`

	StandInventory string
	WashInventory  string
	HarvestBins    string
	UnitsHarvested string
	CropNeeds      string

	FieldNotes  string
	RetailNotes string

	// RetailPrice feeds the estimated-value column on report exports.
	RetailPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeCreate assigns the id in Go so the model works on both postgres and
// the sqlite test databases, which have no gen_random_uuid().
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
