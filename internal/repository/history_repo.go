package repository

import (
	"context"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryFilter narrows ledger queries. Zero values mean "no filter";
// Limit == 0 returns the full match set (report replay needs every row).
type HistoryFilter struct {
	ProductID        *uuid.UUID
	ChangedField     model.TrackedField
	Start            *time.Time
	End              *time.Time
	ExcludeLocations []string
	Page             int
	Limit            int
}

// HistoryRepository is append-only by construction: there is no update or
// delete method, matching the ledger's immutability guarantee.
type HistoryRepository interface {
	Create(ctx context.Context, e *model.HistoryEntry) error
	List(ctx context.Context, filter HistoryFilter) ([]model.HistoryEntry, int64, error)
}

type historyRepo struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) HistoryRepository { return &historyRepo{db: db} }

func (r *historyRepo) Create(ctx context.Context, e *model.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *historyRepo) List(ctx context.Context, filter HistoryFilter) ([]model.HistoryEntry, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.HistoryEntry{})

	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ChangedField != "" {
		q = q.Where("changed_field = ?", filter.ChangedField)
	}
	if filter.Start != nil {
		q = q.Where("created_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("created_at <= ?", *filter.End)
	}
	if len(filter.ExcludeLocations) > 0 {
		q = q.Where("location NOT IN ?", filter.ExcludeLocations)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var entries []model.HistoryEntry
	err := q.Find(&entries).Error
	return entries, total, err
}
