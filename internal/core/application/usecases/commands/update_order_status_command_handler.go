package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/pkg/errs"
)

// UpdateOrderStatusResult is returned after a successful transition,
// together with the notifications to dispatch once the transaction is
// committed.
type UpdateOrderStatusResult struct {
	OrderID   kernel.UUID
	Status    order.Status
	UpdatedAt time.Time

	Notifications []notification.Notification
}

// UpdateOrderStatusCommandHandler handles order status transitions. The
// transition policy lives on the aggregate; the handler resolves the actor,
// runs the assignment flow when a worker is bound, and persists the result.
type UpdateOrderStatusCommandHandler struct {
	uowFactory WorkflowUoWFactory
	matcher    services.WorkerMatcher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory WorkflowUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewWorkerMatcher(),
	}
}

// Handle processes the status transition for the given caller.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}
	if !caller.IsActive() {
		return UpdateOrderStatusResult{}, errs.NewAccessDeniedError(
			caller.Role().String(), "update an order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}
	if err := o.AuthorizeTransition(caller, cmd.Target()); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	actor, err := resolveActor(ctx, uow.UserRepository(), caller)
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	now := time.Now().UTC()
	var assignedWorker *kernel.UUID
	if cmd.Target() == order.StatusAssigned && cmd.WorkerID() != nil {
		_, worker, err := assignWorkerToOrder(ctx, uow, h.matcher, o, *cmd.WorkerID(), actor, now)
		if err != nil {
			return UpdateOrderStatusResult{}, err
		}
		id := worker.ID()
		assignedWorker = &id
	} else {
		if err := o.ChangeStatus(cmd.Target(), actor, cmd.Reason(), now); err != nil {
			return UpdateOrderStatusResult{}, err
		}
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return UpdateOrderStatusResult{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	recipients := []kernel.UUID{o.ShopkeeperID(), o.CompanyID()}
	if assignedWorker != nil {
		recipients = append(recipients, *assignedWorker)
	}
	notifications := notifyOrderParties(recipients,
		notification.TypeOrderStatusChange, "Order status updated",
		statusChangeMessage(o), notification.PriorityNormal, o.ID(), nil)

	return UpdateOrderStatusResult{
		OrderID:       o.ID(),
		Status:        o.Status(),
		UpdatedAt:     now,
		Notifications: notifications,
	}, nil
}
