package commands

import (
	"context"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/pkg/errs"
)

// AssignWorkerResult is returned after a successful assignment, together
// with the notifications to dispatch once the transaction is committed.
type AssignWorkerResult struct {
	OrderID        kernel.UUID
	DeliveryID     kernel.UUID
	DeliveryNumber string
	WorkerID       kernel.UUID
	WorkerName     string
	WorkerPhone    string

	Notifications []notification.Notification
}

// AssignWorkerCommandHandler handles the dedicated assignment operation used
// by company and admin flows: eligibility-checks the worker, binds them to
// the order, and creates the delivery in one transaction.
type AssignWorkerCommandHandler struct {
	uowFactory WorkflowUoWFactory
	matcher    services.WorkerMatcher
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
func NewAssignWorkerCommandHandler(uowFactory WorkflowUoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewWorkerMatcher(),
	}
}

// Handle processes the assignment for the given caller. Only an admin or
// the order's own company representative may assign workers.
func (h *AssignWorkerCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd AssignWorkerCommand,
) (AssignWorkerResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignWorkerResult{}, err
	}
	if !caller.IsActive() {
		return AssignWorkerResult{}, errs.NewAccessDeniedError(
			caller.Role().String(), "assign a delivery worker")
	}
	if caller.Role() != user.RoleAdmin && caller.Role() != user.RoleCompanyRep {
		return AssignWorkerResult{}, errs.NewAccessDeniedError(
			caller.Role().String(), "assign a delivery worker")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignWorkerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return AssignWorkerResult{}, err
	}
	if err := o.AuthorizeTransition(caller, order.StatusAssigned); err != nil {
		return AssignWorkerResult{}, err
	}

	actor, err := resolveActor(ctx, uow.UserRepository(), caller)
	if err != nil {
		return AssignWorkerResult{}, err
	}

	now := time.Now().UTC()
	d, worker, err := assignWorkerToOrder(ctx, uow, h.matcher, o, cmd.WorkerID(), actor, now)
	if err != nil {
		return AssignWorkerResult{}, err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return AssignWorkerResult{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return AssignWorkerResult{}, err
	}

	deliveryID := d.ID()
	notifications := notifyOrderParties(
		[]kernel.UUID{worker.ID()},
		notification.TypeWorkerAssigned, "New delivery assigned",
		fmt.Sprintf("You were assigned delivery %s for order %s", d.Number(), o.Number()),
		notification.PriorityHigh, o.ID(), &deliveryID)
	notifications = append(notifications, notifyOrderParties(
		[]kernel.UUID{o.ShopkeeperID()},
		notification.TypeOrderStatusChange, "Order status updated",
		statusChangeMessage(o), notification.PriorityNormal, o.ID(), &deliveryID)...)

	return AssignWorkerResult{
		OrderID:        o.ID(),
		DeliveryID:     d.ID(),
		DeliveryNumber: d.Number(),
		WorkerID:       worker.ID(),
		WorkerName:     worker.Name(),
		WorkerPhone:    worker.Phone(),
		Notifications:  notifications,
	}, nil
}
