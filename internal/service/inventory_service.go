package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

// InventoryService covers direct stock adjustments, ledger reads and the
// derived low-stock alerts.
type InventoryService interface {
	Adjust(ctx context.Context, req dto.AdjustInventoryRequest) (*dto.AdjustInventoryResponse, error)
	History(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryListResponse, error)
	Alerts(ctx context.Context) ([]dto.StockAlertResponse, error)
}

type inventoryService struct {
	products   repository.ProductRepository
	history    repository.HistoryRepository
	dispatcher *worker.Dispatcher
}

func NewInventoryService(
	products repository.ProductRepository,
	history repository.HistoryRepository,
	dispatcher *worker.Dispatcher,
) InventoryService {
	return &inventoryService{products: products, history: history, dispatcher: dispatcher}
}

// Adjust applies a signed delta to currentStock with a floor of 0 (no
// ceiling). The ledger row records the post-clamp effective delta so that
// newValue == previousValue + change always holds.
func (s *inventoryService) Adjust(ctx context.Context, req dto.AdjustInventoryRequest) (*dto.AdjustInventoryResponse, error) {
	id, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := p.CurrentStock
	applied := req.Change
	if previous+applied < 0 {
		applied = -previous
	}
	newStock := previous + applied

	p.CurrentStock = newStock
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	location := p.FieldLocation
	if req.FieldLocation != nil && *req.FieldLocation != "" {
		location = *req.FieldLocation // Wholesale / Kitchen tagging
	}
	entry := &model.HistoryEntry{
		ProductID:     p.ID,
		ChangedField:  model.FieldCurrentStock,
		Location:      location,
		PreviousValue: previous,
		Change:        applied,
		NewValue:      newStock,
		UpdatedBy:     updatedByOrDefault(req.UpdatedBy),
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return nil, err
	}

	if previous >= criticalStockBelow && newStock < criticalStockBelow {
		if err := s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockJobPayload{
			ProductID:     p.ID.String(),
			Name:          p.Name,
			FieldLocation: p.FieldLocation,
			CurrentStock:  newStock,
			Level:         classifyStock(newStock),
		}); err != nil {
			log.Warn().Err(err).Str("product_id", p.ID.String()).Msg("low stock alert enqueue failed")
		}
	}

	return &dto.AdjustInventoryResponse{
		ProductID:       p.ID.String(),
		PreviousStock:   previous,
		RequestedChange: req.Change,
		AppliedChange:   applied,
		NewStock:        newStock,
		Clamped:         applied != req.Change,
	}, nil
}

func (s *inventoryService) History(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryListResponse, error) {
	repoFilter := repository.HistoryFilter{
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if filter.ProductID != "" {
		id, err := uuid.Parse(filter.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		repoFilter.ProductID = &id
	}
	if filter.StartDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		repoFilter.Start = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		end = endOfDay(end)
		repoFilter.End = &end
	}
	if !filter.IncludeWholesaleKitchen {
		repoFilter.ExcludeLocations = []string{model.LocationWholesale, model.LocationKitchen}
	}

	entries, total, err := s.history.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	names := s.productNames(ctx)
	resp := &dto.HistoryListResponse{
		Data:  make([]dto.HistoryEntryResponse, len(entries)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range entries {
		e := &entries[i]
		resp.Data[i] = dto.HistoryEntryResponse{
			ID:            e.ID.String(),
			ProductID:     e.ProductID.String(),
			ProductName:   names[e.ProductID], // empty for orphaned entries
			ChangedField:  string(e.ChangedField),
			Location:      e.Location,
			FieldLocation: e.Label(),
			PreviousValue: e.PreviousValue,
			Change:        e.Change,
			NewValue:      e.NewValue,
			UpdatedBy:     e.UpdatedBy,
			CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *inventoryService) Alerts(ctx context.Context) ([]dto.StockAlertResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertResponse, 0)
	for i := range products {
		p := &products[i]
		level := classifyStock(p.CurrentStock)
		if level == StockLevelOK {
			continue
		}
		alerts = append(alerts, dto.StockAlertResponse{
			ProductID:     p.ID.String(),
			Name:          p.Name,
			FieldLocation: p.FieldLocation,
			CurrentStock:  p.CurrentStock,
			Level:         level,
		})
	}
	return alerts, nil
}

func (s *inventoryService) productNames(ctx context.Context) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	products, err := s.products.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not resolve product names for history listing")
		return names
	}
	for i := range products {
		names[products[i].ID] = products[i].Name
	}
	return names
}

// endOfDay normalizes an end date to 23:59:59.999999999 so the range is
// inclusive of the whole last day.
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}
