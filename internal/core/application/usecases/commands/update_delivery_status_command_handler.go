package commands

import (
	"context"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
)

// UpdateDeliveryStatusResult is returned after a successful transition,
// together with the notifications to dispatch once the transaction is
// committed.
type UpdateDeliveryStatusResult struct {
	DeliveryID kernel.UUID
	Status     delivery.Status
	UpdatedAt  time.Time

	Notifications []notification.Notification
}

// UpdateDeliveryStatusCommandHandler handles delivery progress updates and
// operator overrides. A terminal outcome (failed, returned) is propagated to
// the parent order inside the same transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status transitions.
func NewUpdateDeliveryStatusCommandHandler(uowFactory WorkflowUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition for the given caller. Workers may move
// their own deliveries; moving a delivery to returned is an admin override.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if cmd.Target() == delivery.StatusReturned && !caller.IsAdmin() {
		return UpdateDeliveryStatusResult{}, errs.NewAccessDeniedError(
			caller.Role().String(), "return a delivery")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if err := authorizeDeliveryMutation(caller, d,
		fmt.Sprintf("move delivery %s to %s", d.Number(), cmd.Target())); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	now := time.Now().UTC()
	if err := d.ChangeStatus(cmd.Target(), now); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}
	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	var notifications []notification.Notification
	if cmd.Target().IsTerminal() {
		actor, err := resolveActor(ctx, uow.UserRepository(), caller)
		if err != nil {
			return UpdateDeliveryStatusResult{}, err
		}
		o, err := syncOrderFromDelivery(ctx, uow, d, cmd.Target(), actor, cmd.Reason(), now)
		if err != nil {
			return UpdateDeliveryStatusResult{}, err
		}

		deliveryID := d.ID()
		notifications = notifyOrderParties(
			[]kernel.UUID{d.Shopkeeper().ID(), d.Company().ID()},
			notification.TypeOrderStatusChange, "Delivery "+string(cmd.Target()),
			fmt.Sprintf("Delivery %s is %s; order %s is now %s",
				d.Number(), cmd.Target(), o.Number(), o.Status()),
			notification.PriorityHigh, o.ID(), &deliveryID)
	}

	if err := uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	return UpdateDeliveryStatusResult{
		DeliveryID:    d.ID(),
		Status:        d.Status(),
		UpdatedAt:     now,
		Notifications: notifications,
	}, nil
}
