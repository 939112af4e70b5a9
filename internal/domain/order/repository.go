package order

import "context"

// Repository is the ordered in-memory store of orders. Insertion order is
// preserved and observable through All.
type Repository interface {
	Add(ctx context.Context, order *Order) error
	All(ctx context.Context) []*Order
	FindByID(ctx context.Context, id string) (*Order, bool)
	Remove(ctx context.Context, id string) bool
	Count(ctx context.Context) int
	IsEmpty(ctx context.Context) bool
	Clear(ctx context.Context) int
}
