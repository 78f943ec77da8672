// Package ports defines the contracts between the workflow core and
// infrastructure: repositories, the unit of work, the order number sequence,
// and the notification publisher. Implementations live under
// internal/adapters.
package ports

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns an ObjectNotFoundError when the
	// id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllOverdue retrieves non-terminal orders created before the cutoff.
	GetAllOverdue(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
