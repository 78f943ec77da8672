package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/product"
)

// ProductRepository defines read and stock-mutation access to the product
// catalog. The workflow never edits catalog data beyond stock decrements.
type ProductRepository interface {
	// Get retrieves a catalog entry by id. Returns an ObjectNotFoundError
	// when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically subtracts quantity from the product's stock.
	// The decrement is conditional on sufficient stock; when the stock is
	// short the call fails with a BusinessRuleError and no row changes.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
