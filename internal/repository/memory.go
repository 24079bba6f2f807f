package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// MemoryOrderRepository is an in-memory OrderRepository used in tests and
// local runs without Postgres. It mirrors the SQL implementation's
// semantics, including pgx.ErrNoRows on missing rows.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

// NewMemoryOrderRepository builds an empty in-memory repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &order, nil
}

func (r *MemoryOrderRepository) List(_ context.Context, filter OrderFilter) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Order
	for _, order := range r.orders {
		if !filter.IncludeDeleted && order.Deleted() {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// MemoryCoffeeOptionRepository is an in-memory CoffeeOptionRepository
// seeded from the default catalog.
type MemoryCoffeeOptionRepository struct {
	mu      sync.RWMutex
	options []domain.CoffeeOption
}

// NewMemoryCoffeeOptionRepository seeds the repository with the catalog.
func NewMemoryCoffeeOptionRepository(seed []domain.CoffeeOption) *MemoryCoffeeOptionRepository {
	options := make([]domain.CoffeeOption, len(seed))
	copy(options, seed)
	return &MemoryCoffeeOptionRepository{options: options}
}

func (r *MemoryCoffeeOptionRepository) ListAll(_ context.Context) ([]domain.CoffeeOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(domain.CoffeeOption) bool { return true }), nil
}

func (r *MemoryCoffeeOptionRepository) ListEnabled(_ context.Context) ([]domain.CoffeeOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(o domain.CoffeeOption) bool { return o.Enabled }), nil
}

func (r *MemoryCoffeeOptionRepository) SetEnabled(_ context.Context, id string, enabled bool) (*domain.CoffeeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.options {
		if r.options[i].ID == id {
			r.options[i].Enabled = enabled
			option := r.options[i]
			return &option, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryCoffeeOptionRepository) sorted(keep func(domain.CoffeeOption) bool) []domain.CoffeeOption {
	var result []domain.CoffeeOption
	for _, option := range r.options {
		if keep(option) {
			result = append(result, option)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})
	return result
}
