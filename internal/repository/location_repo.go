package repository

import (
	"context"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FieldLocationRepository interface {
	Create(ctx context.Context, l *model.FieldLocation) error
	List(ctx context.Context) ([]model.FieldLocation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FieldLocation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRepo struct{ db *gorm.DB }

func NewFieldLocationRepository(db *gorm.DB) FieldLocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, l *model.FieldLocation) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) List(ctx context.Context) ([]model.FieldLocation, error) {
	var locations []model.FieldLocation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FieldLocation, error) {
	var l model.FieldLocation
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.FieldLocation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
