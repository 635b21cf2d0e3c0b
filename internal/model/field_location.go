package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldLocation is a named growing/storage area. Products reference it by
// name rather than id, so renames do not cascade.
type FieldLocation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (l *FieldLocation) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
