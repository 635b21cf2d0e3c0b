package service_test

import (
	"context"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID // natural (creation) order
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.products[id])
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubProductRepo) CountByLocation(_ context.Context, location string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.FieldLocation == location {
			n++
		}
	}
	return n, nil
}

// ── In-memory HistoryRepository stub ─────────────────────────────────────────

type stubHistoryRepo struct {
	entries []model.HistoryEntry
}

func newStubHistoryRepo() *stubHistoryRepo { return &stubHistoryRepo{} }

func (r *stubHistoryRepo) Create(_ context.Context, e *model.HistoryEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubHistoryRepo) List(_ context.Context, filter repository.HistoryFilter) ([]model.HistoryEntry, int64, error) {
	var matched []model.HistoryEntry
	for _, e := range r.entries {
		if filter.ProductID != nil && e.ProductID != *filter.ProductID {
			continue
		}
		if filter.ChangedField != "" && e.ChangedField != filter.ChangedField {
			continue
		}
		if filter.Start != nil && e.CreatedAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && e.CreatedAt.After(*filter.End) {
			continue
		}
		if excluded(e.Location, filter.ExcludeLocations) {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		from := (page - 1) * filter.Limit
		if from > len(matched) {
			from = len(matched)
		}
		to := from + filter.Limit
		if to > len(matched) {
			to = len(matched)
		}
		matched = matched[from:to]
	}
	return matched, total, nil
}

func excluded(location string, exclude []string) bool {
	for _, e := range exclude {
		if location == e {
			return true
		}
	}
	return false
}

// ── In-memory SettingRepository stub ─────────────────────────────────────────

type stubSettingRepo struct {
	values map[string]datatypes.JSON
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{values: make(map[string]datatypes.JSON)}
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (*model.Setting, error) {
	v, ok := r.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Setting{Key: key, Value: v}, nil
}

func (r *stubSettingRepo) Upsert(_ context.Context, key string, value datatypes.JSON) error {
	r.values[key] = value
	return nil
}

// ── In-memory SiteAuthRepository stub ────────────────────────────────────────

type stubSiteAuthRepo struct {
	hash string
}

func (r *stubSiteAuthRepo) Get(_ context.Context) (*model.SiteAuth, error) {
	if r.hash == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.SiteAuth{ID: 1, PasswordHash: r.hash}, nil
}

func (r *stubSiteAuthRepo) SaveHash(_ context.Context, hash string) error {
	r.hash = hash
	return nil
}
