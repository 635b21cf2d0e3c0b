package service

import (
	"context"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProductService defines the business logic contract for products, including
// the ledger diffing that runs on every update.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products   repository.ProductRepository
	history    repository.HistoryRepository
	order      RowOrderService
	dispatcher *worker.Dispatcher
}

func NewProductService(
	products repository.ProductRepository,
	history repository.HistoryRepository,
	order RowOrderService,
	dispatcher *worker.Dispatcher,
) ProductService {
	return &productService{products: products, history: history, order: order, dispatcher: dispatcher}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:           req.Name,
		FieldLocation:  req.FieldLocation,
		CurrentStock:   req.CurrentStock,
		StandInventory: req.StandInventory,
		WashInventory:  req.WashInventory,
		HarvestBins:    req.HarvestBins,
		UnitsHarvested: req.UnitsHarvested,
		CropNeeds:      req.CropNeeds,
		FieldNotes:     req.FieldNotes,
		RetailNotes:    req.RetailNotes,
		RetailPrice:    req.RetailPrice,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	// Every insert seeds exactly one ledger row: 0 → currentStock.
	seed := &model.HistoryEntry{
		ProductID:     p.ID,
		ChangedField:  model.FieldCurrentStock,
		Location:      p.FieldLocation,
		PreviousValue: 0,
		Change:        p.CurrentStock,
		NewValue:      p.CurrentStock,
		UpdatedBy:     updatedByOrDefault(req.UpdatedBy),
	}
	if err := s.history.Create(ctx, seed); err != nil {
		return nil, err
	}

	return toProductResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List returns every product in persisted display order. When the order
// setting is unavailable the natural (creation) order is served instead.
func (s *productService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	products = s.order.Apply(ctx, products)

	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, len(products)),
		Total: len(products),
	}
	for i := range products {
		resp.Data[i] = *toProductResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *p
	applyProductPatch(p, req)

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	// One ledger row per tracked field whose coerced value changed. Fields
	// that fail coercion on either side are skipped without error.
	updatedBy := updatedByOrDefault(req.UpdatedBy)
	for _, d := range diffTrackedFields(&before, p) {
		entry := &model.HistoryEntry{
			ProductID:     p.ID,
			ChangedField:  d.field,
			Location:      p.FieldLocation,
			PreviousValue: d.previous,
			Change:        d.change,
			NewValue:      d.current,
			UpdatedBy:     updatedBy,
		}
		if err := s.history.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	s.maybeAlertLowStock(ctx, &before, p)
	return toProductResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	// History rows stay behind: the ledger is append-only and product_id is
	// a weak reference.
	return s.products.Delete(ctx, id)
}

// maybeAlertLowStock enqueues an email job when an update drove currentStock
// below the critical threshold. Best effort — a full queue never fails the
// request.
func (s *productService) maybeAlertLowStock(ctx context.Context, before, after *model.Product) {
	if before.CurrentStock < criticalStockBelow || after.CurrentStock >= criticalStockBelow {
		return
	}
	err := s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockJobPayload{
		ProductID:     after.ID.String(),
		Name:          after.Name,
		FieldLocation: after.FieldLocation,
		CurrentStock:  after.CurrentStock,
		Level:         classifyStock(after.CurrentStock),
	})
	if err != nil {
		log.Warn().Err(err).Str("product_id", after.ID.String()).Msg("low stock alert enqueue failed")
	}
}

// ─── Diffing ─────────────────────────────────────────────────────────────────

type trackedDelta struct {
	field    model.TrackedField
	previous int
	change   int
	current  int
}

// diffTrackedFields compares the six tracked fields of two product states.
// A field contributes a delta only when both sides coerce cleanly and the
// values differ.
func diffTrackedFields(before, after *model.Product) []trackedDelta {
	var deltas []trackedDelta
	for _, f := range model.TrackedFields {
		oldV, okOld := f.Value(before)
		newV, okNew := f.Value(after)
		if !okOld || !okNew || oldV == newV {
			continue
		}
		deltas = append(deltas, trackedDelta{
			field:    f,
			previous: oldV,
			change:   newV - oldV,
			current:  newV,
		})
	}
	return deltas
}

func applyProductPatch(p *model.Product, req dto.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.FieldLocation != nil {
		p.FieldLocation = *req.FieldLocation
	}
	if req.CurrentStock != nil {
		p.CurrentStock = *req.CurrentStock
	}
	if req.StandInventory != nil {
		p.StandInventory = *req.StandInventory
	}
	if req.WashInventory != nil {
		p.WashInventory = *req.WashInventory
	}
	if req.HarvestBins != nil {
		p.HarvestBins = *req.HarvestBins
	}
	if req.UnitsHarvested != nil {
		p.UnitsHarvested = *req.UnitsHarvested
	}
	if req.FieldNotes != nil {
		p.FieldNotes = *req.FieldNotes
	}
	if req.RetailNotes != nil {
		p.RetailNotes = *req.RetailNotes
	}
	if req.CropNeeds != nil {
		p.CropNeeds = *req.CropNeeds
	}
	if req.RetailPrice != nil {
		p.RetailPrice = req.RetailPrice
	}
}

func updatedByOrDefault(updatedBy string) string {
	if updatedBy == "" {
		return defaultUpdatedBy
	}
	return updatedBy
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		FieldLocation:  p.FieldLocation,
		CurrentStock:   p.CurrentStock,
		StandInventory: p.StandInventory,
		WashInventory:  p.WashInventory,
		HarvestBins:    p.HarvestBins,
		UnitsHarvested: p.UnitsHarvested,
		CropNeeds:      p.CropNeeds,
		FieldNotes:     p.FieldNotes,
		RetailNotes:    p.RetailNotes,
		RetailPrice:    p.RetailPrice,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
