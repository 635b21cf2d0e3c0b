package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const reportCacheTTL = 60 * time.Second

// ReportService reconstructs per-product wash-inventory summaries by
// replaying the ledger against current product state.
//
// The reconstruction is algebraic, not a stored snapshot: starting stock is
// derived as current - added + removed, so entries that affect current stock
// but fall outside the queried window silently skew "starting". That is an
// accepted limitation of the ledger design.
type ReportService interface {
	InventoryReport(ctx context.Context, filter dto.ReportFilter) (*dto.InventoryReportResponse, error)
}

type reportService struct {
	products repository.ProductRepository
	history  repository.HistoryRepository
	rdb      *redis.Client // optional short-TTL report cache; nil disables it
}

func NewReportService(products repository.ProductRepository, history repository.HistoryRepository, rdb *redis.Client) ReportService {
	return &reportService{products: products, history: history, rdb: rdb}
}

func (s *reportService) InventoryReport(ctx context.Context, filter dto.ReportFilter) (*dto.InventoryReportResponse, error) {
	start, err := time.Parse(dateLayout, filter.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}
	end, err := time.Parse(dateLayout, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}
	end = endOfDay(end)

	cacheKey := fmt.Sprintf("report:inventory:%s:%s:%s:%t",
		filter.StartDate, filter.EndDate, filter.ProductID, filter.IncludeWholesaleKitchen)
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var productFilter *uuid.UUID
	if filter.ProductID != "" {
		id, parseErr := uuid.Parse(filter.ProductID)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid product id: %w", parseErr)
		}
		productFilter = &id
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	// Step 1: seed one summary per eligible product. Current is the coerced
	// wash inventory snapshot; a non-numeric value falls back to 0.
	summaries := make(map[uuid.UUID]*dto.ProductSummaryResponse, len(products))
	ordered := make([]uuid.UUID, 0, len(products))
	prices := make(map[uuid.UUID]*decimal.Decimal, len(products))
	for i := range products {
		p := &products[i]
		if productFilter != nil && p.ID != *productFilter {
			continue
		}
		if !filter.IncludeWholesaleKitchen && isReservedLocation(p.FieldLocation) {
			continue
		}
		current, ok := model.CoerceQuantity(p.WashInventory)
		if !ok {
			current = 0
		}
		summaries[p.ID] = &dto.ProductSummaryResponse{
			ProductID:     p.ID.String(),
			Name:          p.Name,
			FieldLocation: p.FieldLocation,
			Current:       current,
		}
		ordered = append(ordered, p.ID)
		prices[p.ID] = p.RetailPrice
	}

	// Step 2: replay in-window wash-inventory entries.
	repoFilter := repository.HistoryFilter{
		ChangedField: model.FieldWashInventory,
		Start:        &start,
		End:          &end,
		ProductID:    productFilter,
	}
	if !filter.IncludeWholesaleKitchen {
		repoFilter.ExcludeLocations = []string{model.LocationWholesale, model.LocationKitchen}
	}
	entries, _, err := s.history.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		sum, seeded := summaries[e.ProductID]
		if !seeded {
			continue // orphaned or filtered-out product
		}
		if e.Change > 0 {
			sum.Added += e.Change
		} else {
			sum.Removed += -e.Change
		}
	}

	// Step 3: derive starting stock and classify.
	resp := &dto.InventoryReportResponse{
		StartDate:   filter.StartDate,
		EndDate:     filter.EndDate,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summaries:   make([]dto.ProductSummaryResponse, 0, len(ordered)),
	}
	for _, id := range ordered {
		sum := summaries[id]
		sum.Starting = sum.Current - sum.Added + sum.Removed
		sum.Level = classifyStock(sum.Current)
		if price := prices[id]; price != nil {
			value := price.Mul(decimal.NewFromInt(int64(sum.Current)))
			sum.EstimatedValue = &value
		}
		resp.Summaries = append(resp.Summaries, *sum)
	}

	s.cacheSet(ctx, cacheKey, resp)
	return resp, nil
}

func isReservedLocation(location string) bool {
	return location == model.LocationWholesale || location == model.LocationKitchen
}

// ─── Report cache (best effort) ──────────────────────────────────────────────

func (s *reportService) cacheGet(ctx context.Context, key string) *dto.InventoryReportResponse {
	if s.rdb == nil {
		return nil
	}
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var resp dto.InventoryReportResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *reportService) cacheSet(ctx context.Context, key string, resp *dto.InventoryReportResponse) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, b, reportCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("report cache write failed")
	}
}
