package ports

import (
	"context"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByParty retrieves all orders in which the party participates,
	// as buyer or as seller, newest first.
	GetByParty(ctx context.Context, partyID kernel.UUID) ([]*order.Order, error)

	// GetActiveByCropID retrieves the non-terminal order for a crop, if any.
	// A crop has at most one active order at a time.
	GetActiveByCropID(ctx context.Context, cropID kernel.UUID) (*order.Order, error)
}
