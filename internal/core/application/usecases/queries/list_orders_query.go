package queries

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a filtered, paginated page of orders visible to
// the caller. Shopkeepers see their own orders, company representatives
// their company's, delivery workers the orders assigned to them, and admins
// everything.
type ListOrdersQuery struct {
	statuses  []order.Status
	area      string
	search    string
	startDate *time.Time
	endDate   *time.Time
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for an order listing. statuses filters
// by status membership when non-empty, area by delivery area, and search
// matches order numbers and item product names, case-insensitively.
// startDate/endDate bound the creation time when set. Page numbering starts
// at 1; pageSize is clamped to a sane range.
func NewListOrdersQuery(
	statuses []string,
	area string,
	search string,
	startDate *time.Time,
	endDate *time.Time,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	statusFilter := make([]order.Status, 0, len(statuses))
	for _, status := range statuses {
		s := order.Status(status)
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		statusFilter = append(statusFilter, s)
	}

	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"endDate", errors.New("endDate precedes startDate"))
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return ListOrdersQuery{
		statuses:  statusFilter,
		area:      area,
		search:    search,
		startDate: startDate,
		endDate:   endDate,
		page:      page,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Statuses returns the status membership filter, empty when unset.
func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// Area returns the delivery area filter, empty when unset.
func (q ListOrdersQuery) Area() string {
	return q.area
}

// Search returns the free-text search term, empty when unset.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// StartDate returns the lower creation-time bound, nil when unset.
func (q ListOrdersQuery) StartDate() *time.Time {
	return q.startDate
}

// EndDate returns the upper creation-time bound, nil when unset.
func (q ListOrdersQuery) EndDate() *time.Time {
	return q.endDate
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// OrderListRow is one order in a listing.
type OrderListRow struct {
	ID            kernel.UUID
	Number        string
	Status        order.Status
	ShopkeeperID  kernel.UUID
	CompanyID     kernel.UUID
	WorkerID      *kernel.UUID
	Area          string
	City          string
	ItemCount     int
	FinalAmount   float64
	PaymentMethod order.PaymentMethod
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// OrderListSummary aggregates the full filtered set, not just the
// returned page.
type OrderListSummary struct {
	TotalCount       int64
	CountByStatus    map[order.Status]int64
	TotalFinalAmount float64
	OverdueCount     int64
}

// ListOrdersResponse is one page of orders plus aggregates over the whole
// filtered set.
type ListOrdersResponse struct {
	Orders   []OrderListRow
	Summary  OrderListSummary
	Page     int
	PageSize int
}
