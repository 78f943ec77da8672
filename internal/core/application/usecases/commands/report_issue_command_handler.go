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

// ReportIssueResult is returned after an issue report, together with the
// notifications to dispatch once the transaction is committed.
type ReportIssueResult struct {
	DeliveryID  kernel.UUID
	Status      delivery.Status
	IssueCount  int
	OrderStatus string

	Notifications []notification.Notification
}

// ReportIssueCommandHandler handles issue reports and their branching
// resolution. The issue is always appended; depending on canComplete the
// delivery additionally fails (cancelling the order) or completes (walking
// the order to delivered). Shopkeeper and company are notified with high
// priority in every branch.
type ReportIssueCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewReportIssueCommandHandler creates a handler for delivery issue reports.
func NewReportIssueCommandHandler(uowFactory WorkflowUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue report for the given caller.
func (h *ReportIssueCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd ReportIssueCommand,
) (ReportIssueResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReportIssueResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReportIssueResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return ReportIssueResult{}, err
	}
	if err := authorizeDeliveryMutation(caller, d,
		fmt.Sprintf("report an issue on delivery %s", d.Number())); err != nil {
		return ReportIssueResult{}, err
	}

	now := time.Now().UTC()
	issue, err := delivery.NewIssue(cmd.IssueType(), cmd.Description(), cmd.Resolution(), now)
	if err != nil {
		return ReportIssueResult{}, err
	}
	d.ReportIssue(issue)

	orderStatus := ""
	if cmd.CanComplete() != nil {
		actor, err := resolveActor(ctx, uow.UserRepository(), caller)
		if err != nil {
			return ReportIssueResult{}, err
		}

		var outcome delivery.Status
		if *cmd.CanComplete() {
			if err := d.CompleteResolved(now); err != nil {
				return ReportIssueResult{}, err
			}
			outcome = delivery.StatusDelivered
		} else {
			if err := d.Fail(now); err != nil {
				return ReportIssueResult{}, err
			}
			outcome = delivery.StatusFailed
		}

		o, err := syncOrderFromDelivery(ctx, uow, d, outcome, actor, cmd.Description(), now)
		if err != nil {
			return ReportIssueResult{}, err
		}
		orderStatus = o.Status().String()
	}

	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return ReportIssueResult{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return ReportIssueResult{}, err
	}

	deliveryID := d.ID()
	notifications := notifyOrderParties(
		[]kernel.UUID{d.Shopkeeper().ID(), d.Company().ID()},
		notification.TypeDeliveryIssue, "Delivery issue reported",
		fmt.Sprintf("Delivery %s reported %s: %s", d.Number(), cmd.IssueType(), cmd.Description()),
		notification.PriorityHigh, d.OrderID(), &deliveryID)

	return ReportIssueResult{
		DeliveryID:    d.ID(),
		Status:        d.Status(),
		IssueCount:    len(d.Issues()),
		OrderStatus:   orderStatus,
		Notifications: notifications,
	}, nil
}
