package commands

import (
	"context"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/user"
)

// CompleteDeliveryResult is returned after a successful completion, together
// with the notifications to dispatch once the transaction is committed.
type CompleteDeliveryResult struct {
	DeliveryID  kernel.UUID
	Status      delivery.Status
	DeliveredAt time.Time

	Notifications []notification.Notification
}

// CompleteDeliveryCommandHandler handles delivery completion: storing the
// proof, moving the delivery to delivered, and walking the parent order to
// delivered inside the same transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory WorkflowUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion for the given caller.
func (h *CompleteDeliveryCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd CompleteDeliveryCommand,
) (CompleteDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	if err := authorizeDeliveryMutation(caller, d,
		fmt.Sprintf("complete delivery %s", d.Number())); err != nil {
		return CompleteDeliveryResult{}, err
	}

	now := time.Now().UTC()
	if err := d.Complete(cmd.Proof(), now); err != nil {
		return CompleteDeliveryResult{}, err
	}
	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return CompleteDeliveryResult{}, err
	}

	actor, err := resolveActor(ctx, uow.UserRepository(), caller)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	o, err := syncOrderFromDelivery(ctx, uow, d, delivery.StatusDelivered, actor, "", now)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	deliveryID := d.ID()
	notifications := notifyOrderParties(
		[]kernel.UUID{d.Shopkeeper().ID(), d.Company().ID()},
		notification.TypeDeliveryCompleted, "Order delivered",
		fmt.Sprintf("Order %s was delivered by %s", o.Number(), d.Worker().Name()),
		notification.PriorityNormal, o.ID(), &deliveryID)

	return CompleteDeliveryResult{
		DeliveryID:    d.ID(),
		Status:        d.Status(),
		DeliveredAt:   now,
		Notifications: notifications,
	}, nil
}
