package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to bind a delivery worker to an
// approved order, which also creates the fulfillment record.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a delivery worker.
func NewAssignWorkerCommand(orderID, workerID kernel.UUID) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		workerID.Validate(),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	cmd.orderID = orderID
	cmd.workerID = workerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the delivery worker to bind.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}
