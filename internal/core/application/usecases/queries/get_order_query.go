package queries

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQueryByID or NewGetOrderQueryByNumber constructor",
)

// GetOrderQuery retrieves one order either by ID or by its human-facing
// number. The two lookups are distinct constructors, so a caller can never
// pass an ambiguous reference.
type GetOrderQuery struct {
	id     *kernel.UUID
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderQueryByID creates a lookup by order ID.
func NewGetOrderQueryByID(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderQueryByNumber creates a lookup by order number.
func NewGetOrderQueryByNumber(number string) (GetOrderQuery, error) {
	if number == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order number")
	}
	return GetOrderQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the ID reference, nil when the query is by number.
func (q GetOrderQuery) ID() *kernel.UUID {
	return q.id
}

// Number returns the number reference, empty when the query is by ID.
func (q GetOrderQuery) Number() string {
	return q.number
}

// OrderItemDetail is one line item in an order detail view.
type OrderItemDetail struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
	Unit        string
}

// TimelineDetail is one timeline entry in an order detail view.
type TimelineDetail struct {
	Status    order.Status
	At        time.Time
	Note      string
	ActorName string
	ActorRole user.Role
}

// DeliveryBrief summarizes the delivery attached to an order, when one
// exists.
type DeliveryBrief struct {
	ID          kernel.UUID
	Number      string
	Status      string
	WorkerID    kernel.UUID
	WorkerName  string
	WorkerPhone string
	AssignedAt  time.Time
	DeliveredAt *time.Time
}

// GetOrderResponse is the full order detail view.
type GetOrderResponse struct {
	ID              kernel.UUID
	Number          string
	Status          order.Status
	ShopkeeperID    kernel.UUID
	CompanyID       kernel.UUID
	WorkerID        *kernel.UUID
	Items           []OrderItemDetail
	TotalAmount     float64
	TaxAmount       float64
	DeliveryCharge  float64
	FinalAmount     float64
	Address         string
	Area            string
	City            string
	Instructions    string
	PreferredDate   *time.Time
	PaymentMethod   order.PaymentMethod
	Notes           string
	RejectionReason string
	Timeline        []TimelineDetail
	Delivery        *DeliveryBrief
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}
