package repository

import (
	"context"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteAuthRepository manages the single site-wide password row.
// Get returns gorm.ErrRecordNotFound while the site is still open.
type SiteAuthRepository interface {
	Get(ctx context.Context) (*model.SiteAuth, error)
	SaveHash(ctx context.Context, hash string) error
}

type siteAuthRepo struct{ db *gorm.DB }

func NewSiteAuthRepository(db *gorm.DB) SiteAuthRepository { return &siteAuthRepo{db: db} }

func (r *siteAuthRepo) Get(ctx context.Context) (*model.SiteAuth, error) {
	var a model.SiteAuth
	err := r.db.WithContext(ctx).First(&a, "id = ?", 1).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *siteAuthRepo) SaveHash(ctx context.Context, hash string) error {
	a := model.SiteAuth{ID: 1, PasswordHash: hash}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&a).Error
}
