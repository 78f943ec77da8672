package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a worker's completion of a delivery
// with proof. An empty signature fails here, before any state is read or
// written.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	proof      delivery.Proof

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID, signature, photo, notes string,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	proof, err := delivery.NewProof(signature, photo, notes)
	if err != nil {
		return CompleteDeliveryCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.proof = proof

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Proof returns the validated proof of delivery.
func (c CompleteDeliveryCommand) Proof() delivery.Proof {
	return c.proof
}
