package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrPositionOutOfRange is returned when a move targets a 1-based position
// outside [1, N].
var ErrPositionOutOfRange = errors.New("position out of range")

// RowOrderService maintains the client-visible product ordering, persisted as
// a JSON array of product ids under the product_row_order settings key.
type RowOrderService interface {
	// Current returns the reconciled order: stale ids pruned, products
	// missing from the stored order appended in natural order.
	Current(ctx context.Context) ([]uuid.UUID, error)
	// Move places the product at a 1-based target position, shifting the
	// block between old and new position by one and leaving the relative
	// order of everything else intact.
	Move(ctx context.Context, productID uuid.UUID, position int) ([]uuid.UUID, error)
	// Apply sorts products by the persisted order, falling back to the
	// given (natural) order when the settings store is unavailable.
	Apply(ctx context.Context, products []model.Product) []model.Product
}

type rowOrderService struct {
	settings repository.SettingRepository
	products repository.ProductRepository
}

func NewRowOrderService(settings repository.SettingRepository, products repository.ProductRepository) RowOrderService {
	return &rowOrderService{settings: settings, products: products}
}

func (s *rowOrderService) Current(ctx context.Context) ([]uuid.UUID, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, products), nil
}

func (s *rowOrderService) Move(ctx context.Context, productID uuid.UUID, position int) ([]uuid.UUID, error) {
	order, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(order) {
		return nil, ErrPositionOutOfRange
	}

	from := -1
	for i, id := range order {
		if id == productID {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, gorm.ErrRecordNotFound
	}

	to := position - 1
	if from != to {
		// Pull the id out, then reinsert: everything between from and to
		// shifts by exactly one slot.
		id := order[from]
		order = append(order[:from], order[from+1:]...)
		order = append(order[:to], append([]uuid.UUID{id}, order[to:]...)...)
	}

	if err := s.persist(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *rowOrderService) Apply(ctx context.Context, products []model.Product) []model.Product {
	order := s.reconcile(ctx, products)
	rank := make(map[uuid.UUID]int, len(order))
	for i, id := range order {
		rank[id] = i
	}
	sort.SliceStable(products, func(i, j int) bool {
		return rank[products[i].ID] < rank[products[j].ID]
	})
	return products
}

// reconcile merges the stored order with the live product set. A missing or
// unreadable setting degrades to natural order — never an error on the read
// path.
func (s *rowOrderService) reconcile(ctx context.Context, products []model.Product) []uuid.UUID {
	live := make(map[uuid.UUID]bool, len(products))
	for i := range products {
		live[products[i].ID] = true
	}

	var stored []uuid.UUID
	setting, err := s.settings.Get(ctx, model.SettingRowOrder)
	switch {
	case err == nil:
		var raw []string
		if jsonErr := json.Unmarshal(setting.Value, &raw); jsonErr != nil {
			log.Warn().Err(jsonErr).Msg("row order setting is not a json id array — ignoring")
		} else {
			for _, v := range raw {
				if id, parseErr := uuid.Parse(v); parseErr == nil {
					stored = append(stored, id)
				}
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no order saved yet
	default:
		log.Warn().Err(err).Msg("row order setting unavailable — using natural order")
	}

	order := make([]uuid.UUID, 0, len(products))
	seen := make(map[uuid.UUID]bool, len(products))
	for _, id := range stored {
		if live[id] && !seen[id] { // prune deleted products
			order = append(order, id)
			seen[id] = true
		}
	}
	// New products land after the current maximum rank, in natural order.
	for i := range products {
		if !seen[products[i].ID] {
			order = append(order, products[i].ID)
		}
	}
	return order
}

func (s *rowOrderService) persist(ctx context.Context, order []uuid.UUID) error {
	raw := make([]string, len(order))
	for i, id := range order {
		raw[i] = id.String()
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return s.settings.Upsert(ctx, model.SettingRowOrder, datatypes.JSON(b))
}
