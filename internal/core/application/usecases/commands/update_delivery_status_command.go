package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a worker's simple progress update
// (picked_up, in_transit) or an operator override (failed, returned).
// Completion is a separate command because it carries proof.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	reason     string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to transition a delivery.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID, target delivery.Status, reason string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.target = target
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to transition.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

// Reason returns the failure or return reason, possibly empty.
func (c UpdateDeliveryStatusCommand) Reason() string {
	return c.reason
}
