package memory

import (
	"context"
	"sync"

	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
)

// OrderRepository keeps orders in insertion order. Orders are immutable, so
// stored pointers are handed out directly; only the slice itself is guarded.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

var _ domain.Repository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Add(ctx context.Context, order *domain.Order) error {
	_ = ctx
	if order == nil {
		return domain.ErrNilOrder
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

// All returns a snapshot of every stored order in insertion order.
func (r *OrderRepository) All(ctx context.Context) []*domain.Order {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*domain.Order, len(r.orders))
	copy(snapshot, r.orders)
	return snapshot
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, bool) {
	_ = ctx
	if id == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// Remove deletes every order carrying id and reports whether any was removed.
func (r *OrderRepository) Remove(ctx context.Context, id string) bool {
	_ = ctx
	if id == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	removed := false
	for _, o := range r.orders {
		if o.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	if !removed {
		return false
	}
	clear(r.orders[len(kept):])
	r.orders = kept
	return true
}

func (r *OrderRepository) Count(ctx context.Context) int {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

func (r *OrderRepository) IsEmpty(ctx context.Context) bool {
	return r.Count(ctx) == 0
}

// Clear drops every order and returns how many were stored.
func (r *OrderRepository) Clear(ctx context.Context) int {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.orders)
	r.orders = nil
	return n
}
