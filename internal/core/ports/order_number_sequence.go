package ports

import (
	"context"
)

// OrderNumberSequence allocates gapless-enough order numbers. Next must be
// called inside the transaction that persists the order, so a rolled-back
// creation does not burn a visible number without its order.
type OrderNumberSequence interface {
	// Next returns the next sequence value.
	Next(ctx context.Context) (int64, error)
}
