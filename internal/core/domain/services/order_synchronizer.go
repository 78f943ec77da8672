package services

import (
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/order"
)

// OrderSynchronizer is a domain service that propagates a delivery outcome
// to the parent order. The coupling between the two aggregates is explicit:
// callers invoke SyncFromDelivery right after mutating the delivery, inside
// the same transaction.
//
// Outcome mapping:
//   - delivered: the order is walked along picked_up -> delivered
//   - failed or returned: the order is cancelled
//
// The sync is idempotent with respect to terminal orders: an order that
// already reached a terminal status is left untouched.
type OrderSynchronizer struct{}

// NewOrderSynchronizer creates a new OrderSynchronizer instance.
func NewOrderSynchronizer() OrderSynchronizer {
	return OrderSynchronizer{}
}

// SyncFromDelivery applies the order-side effect of a delivery outcome.
// Outcomes other than delivered, failed, and returned are no-ops: only
// terminal delivery statuses have an order-side effect.
func (OrderSynchronizer) SyncFromDelivery(
	o *order.Order,
	outcome delivery.Status,
	actor order.Actor,
	reason string,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status().IsTerminal() {
		return nil
	}

	switch outcome {
	case delivery.StatusDelivered:
		// The order may lag behind the delivery when the worker skipped the
		// intermediate order updates; walk it along the happy path.
		steps, ok := deliveredPath[o.Status()]
		if !ok {
			return o.ChangeStatus(order.StatusDelivered, actor, "", now)
		}
		for _, step := range steps {
			if err := o.ChangeStatus(step, actor, "", now); err != nil {
				return err
			}
		}
		return nil
	case delivery.StatusFailed, delivery.StatusReturned:
		return o.ChangeStatus(order.StatusCancelled, actor, reason, now)
	}

	return nil
}

var deliveredPath = map[order.Status][]order.Status{
	order.StatusAssigned: {order.StatusAccepted, order.StatusPickedUp, order.StatusDelivered},
	order.StatusAccepted: {order.StatusPickedUp, order.StatusDelivered},
	order.StatusPickedUp: {order.StatusDelivered},
}
