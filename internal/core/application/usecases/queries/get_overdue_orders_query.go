package queries

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves non-terminal orders older than the overdue
// threshold as of a given instant. The scheduled overdue sweep runs it with
// the current time; admin tooling may ask about any instant.
type GetOverdueOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue-orders query evaluated as of
// the given instant.
func NewGetOverdueOrdersQuery(asOf time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the evaluation instant.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

// OverdueOrderRow is one overdue order.
type OverdueOrderRow struct {
	ID           kernel.UUID
	Number       string
	Status       order.Status
	ShopkeeperID kernel.UUID
	CompanyID    kernel.UUID
	Area         string
	CreatedAt    time.Time
	Age          time.Duration
}
