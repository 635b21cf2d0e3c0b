package model

import "time"

// SiteAuth holds the single site-wide password hash. At most one row exists
// (ID is pinned to 1); no row at all means the site is open.
type SiteAuth struct {
	ID           int    `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
	UpdatedAt    time.Time
}

func (SiteAuth) TableName() string { return "site_auth" }
