package queries

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrListWorkerDeliveriesQueryIsNotConstructed = errors.New(
	"ListWorkerDeliveriesQuery must be created via NewListWorkerDeliveriesQuery constructor",
)

// ListWorkerDeliveriesQuery retrieves the deliveries assigned to one worker.
// Workers list their own queue; admins may pass any worker ID.
type ListWorkerDeliveriesQuery struct {
	workerID kernel.UUID
	status   *delivery.Status

	guard guard.ConstructorGuard
}

// NewListWorkerDeliveriesQuery creates a query for a worker's delivery
// queue. status filters by exact delivery status when non-empty.
func NewListWorkerDeliveriesQuery(workerID kernel.UUID, status string) (ListWorkerDeliveriesQuery, error) {
	if err := workerID.Validate(); err != nil {
		return ListWorkerDeliveriesQuery{}, err
	}

	var statusFilter *delivery.Status
	if status != "" {
		s := delivery.Status(status)
		if err := s.Validate(); err != nil {
			return ListWorkerDeliveriesQuery{}, err
		}
		statusFilter = &s
	}

	return ListWorkerDeliveriesQuery{
		workerID: workerID,
		status:   statusFilter,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWorkerDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListWorkerDeliveriesQueryIsNotConstructed)
}

// WorkerID returns the worker whose queue is listed.
func (q ListWorkerDeliveriesQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// Status returns the status filter, nil when unset.
func (q ListWorkerDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// DeliveryListRow is one delivery in a worker's queue.
type DeliveryListRow struct {
	ID               kernel.UUID
	Number           string
	OrderID          kernel.UUID
	OrderNumber      string
	Status           delivery.Status
	ShopkeeperName   string
	ShopkeeperPhone  string
	PickupLocation   string
	DeliveryLocation string
	Area             string
	AmountToCollect  float64
	IssueCount       int
	AssignedAt       time.Time
	DeliveredAt      *time.Time
}
