package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status. The reason is recorded on rejections and cancellations. An
// optional worker ID turns a move to assigned into a full assignment.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	target   order.Status
	reason   string
	workerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID, target order.Status, reason string, workerID *kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return UpdateOrderStatusCommand{}, err
		}
	}

	cmd.orderID = orderID
	cmd.target = target
	cmd.reason = reason
	cmd.workerID = workerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Reason returns the rejection or cancellation reason, possibly empty.
func (c UpdateOrderStatusCommand) Reason() string {
	return c.reason
}

// WorkerID returns the delivery worker to bind when targeting assigned, or
// nil.
func (c UpdateOrderStatusCommand) WorkerID() *kernel.UUID {
	return c.workerID
}
