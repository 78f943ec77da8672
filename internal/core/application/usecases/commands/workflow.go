package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/core/ports"
	"supplyline/internal/pkg/errs"
)

// resolveActor looks the caller up in the directory and builds the actor
// identity stamped onto timeline entries.
func resolveActor(ctx context.Context, users ports.UserRepository, caller user.Caller) (order.Actor, error) {
	u, err := users.Get(ctx, caller.ID())
	if err != nil {
		return order.Actor{}, err
	}
	return order.NewActor(u.Name(), caller.Role())
}

// newDeliveryForOrder creates the fulfillment record for a freshly assigned
// order: participant snapshots from the directory, the item manifest from
// the order lines, and cash-on-delivery collection of the order's final
// amount.
func newDeliveryForOrder(
	o *order.Order,
	worker, shopkeeper, company *user.User,
	now time.Time,
) (*delivery.Delivery, error) {
	workerParty, err := delivery.NewParty(worker.ID(), worker.Name(), worker.Phone())
	if err != nil {
		return nil, err
	}
	shopkeeperParty, err := delivery.NewParty(shopkeeper.ID(), shopkeeper.Name(), shopkeeper.Phone())
	if err != nil {
		return nil, err
	}
	companyParty, err := delivery.NewParty(company.ID(), company.Name(), company.Phone())
	if err != nil {
		return nil, err
	}

	items := make([]delivery.Item, 0, len(o.Items()))
	for _, line := range o.Items() {
		item, err := delivery.NewItem(line.ProductID(), line.ProductName(), line.Quantity(), line.Unit())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	amountToCollect := 0.0
	if o.Preferences().PaymentMethod() == order.PaymentCashOnDelivery {
		amountToCollect = o.FinalAmount()
	}
	payment, err := delivery.NewPayment(o.Preferences().PaymentMethod(), amountToCollect)
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(
		kernel.NewUUID(), delivery.GenerateNumber(now),
		o.ID(), o.Number(),
		workerParty, shopkeeperParty, companyParty,
		items,
		company.Address(), o.Preferences().Address(), o.Preferences().Area(),
		payment, now)
}

// assignWorkerToOrder runs the full assignment flow inside the caller's
// transaction: worker eligibility, superseding any live delivery left over
// from a previous assignment, binding the worker, and creating the new
// fulfillment record.
func assignWorkerToOrder(
	ctx context.Context,
	uow WorkflowUoW,
	matcher services.WorkerMatcher,
	o *order.Order,
	workerID kernel.UUID,
	actor order.Actor,
	now time.Time,
) (*delivery.Delivery, *user.User, error) {
	users := uow.UserRepository()
	worker, err := users.Get(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	if err := matcher.Match(worker, o.Preferences().Area()); err != nil {
		return nil, nil, err
	}

	deliveries := uow.DeliveryRepository()
	existing, err := deliveries.GetByOrderID(ctx, o.ID())
	switch {
	case err == nil:
		if !existing.Status().IsTerminal() {
			if err := existing.Fail(now); err != nil {
				return nil, nil, err
			}
			if err := deliveries.Update(ctx, existing); err != nil {
				return nil, nil, err
			}
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// first assignment
	default:
		return nil, nil, err
	}

	if err := o.AssignWorker(workerID, actor, now); err != nil {
		return nil, nil, err
	}

	shopkeeper, err := users.Get(ctx, o.ShopkeeperID())
	if err != nil {
		return nil, nil, err
	}
	company, err := users.Get(ctx, o.CompanyID())
	if err != nil {
		return nil, nil, err
	}

	d, err := newDeliveryForOrder(o, worker, shopkeeper, company, now)
	if err != nil {
		return nil, nil, err
	}
	if err := deliveries.Add(ctx, d); err != nil {
		return nil, nil, err
	}

	return d, worker, nil
}

// authorizeDeliveryMutation gates delivery mutations: admins always pass,
// delivery workers only on their own deliveries.
func authorizeDeliveryMutation(caller user.Caller, d *delivery.Delivery, action string) error {
	if !caller.IsActive() {
		return errs.NewAccessDeniedError(caller.Role().String(), action)
	}
	if caller.IsAdmin() {
		return nil
	}
	if caller.Role() == user.RoleDeliveryWorker && d.BelongsToWorker(caller.ID()) {
		return nil
	}
	return errs.NewAccessDeniedErrorWithCause(caller.Role().String(), action,
		errors.New("delivery is not assigned to this caller"))
}

// syncOrderFromDelivery propagates a terminal delivery outcome to the parent
// order inside the same transaction and persists the order.
func syncOrderFromDelivery(
	ctx context.Context,
	uow WorkflowUoW,
	d *delivery.Delivery,
	outcome delivery.Status,
	actor order.Actor,
	reason string,
	now time.Time,
) (*order.Order, error) {
	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return nil, err
	}
	if err := services.NewOrderSynchronizer().SyncFromDelivery(o, outcome, actor, reason, now); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// notifyOrderParties builds one notification per recipient about an order
// event. Recipients that fail validation are skipped rather than failing the
// operation.
func notifyOrderParties(
	recipients []kernel.UUID,
	ntype notification.Type,
	title, message string,
	priority notification.Priority,
	orderID kernel.UUID,
	deliveryID *kernel.UUID,
) []notification.Notification {
	out := make([]notification.Notification, 0, len(recipients))
	for _, r := range recipients {
		n, err := notification.New(r, ntype, title, message, priority, &orderID, deliveryID)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func statusChangeMessage(o *order.Order) string {
	return fmt.Sprintf("Order %s is now %s", o.Number(), o.Status())
}
