package commands

import (
	"context"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
)

// CreateOrderResult is returned after a successful order creation, together
// with the notifications to dispatch once the transaction is committed.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	Number      string
	Status      order.Status
	FinalAmount float64

	Notifications []notification.Notification
}

// CreateOrderCommandHandler handles the business logic for order creation:
// caller authorization, catalog eligibility checks, stock decrements, number
// allocation, and total derivation, all inside one transaction. Stock is
// all-or-nothing: any line failing its decrement rolls back the whole order.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command for the given caller.
// Only an active shopkeeper may place orders.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, caller user.Caller, cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}
	if caller.Role() != user.RoleShopkeeper {
		return CreateOrderResult{}, errs.NewAccessDeniedError(caller.Role().String(), "create an order")
	}
	if !caller.IsActive() {
		return CreateOrderResult{}, errs.NewAccessDeniedError(caller.Role().String(), "create an order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	shopkeeper, err := users.Get(ctx, caller.ID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	company, err := users.Get(ctx, cmd.CompanyID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if company.Role() != user.RoleCompanyRep {
		return CreateOrderResult{}, errs.NewBusinessRuleError(fmt.Sprintf(
			"user %s is not a company and cannot supply orders", company.Name()))
	}
	if !company.IsActive() {
		return CreateOrderResult{}, errs.NewBusinessRuleError(fmt.Sprintf(
			"company %s is not active", company.Name()))
	}

	products := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, req := range cmd.Items() {
		p, err := products.Get(ctx, req.ProductID())
		if err != nil {
			return CreateOrderResult{}, err
		}
		if err := p.CheckOrderable(req.Quantity()); err != nil {
			return CreateOrderResult{}, err
		}

		item, err := order.NewItem(
			p.ID(), p.Name(), req.Quantity(), p.ResolvePrice(req.UnitPrice()), p.Unit())
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)

		if err := products.DecrementStock(ctx, p.ID(), req.Quantity()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	seq, err := uow.OrderNumbers().Next(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	actor, err := order.NewActor(shopkeeper.Name(), caller.Role())
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(), order.FormatNumber(seq),
		caller.ID(), cmd.CompanyID(),
		items, cmd.Preferences(), cmd.Notes(), actor, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	orderID := o.ID()
	created, err := notification.New(
		cmd.CompanyID(), notification.TypeOrderCreated,
		"New order received",
		fmt.Sprintf("%s placed order %s for %.2f", shopkeeper.Name(), o.Number(), o.FinalAmount()),
		notification.PriorityNormal, &orderID, nil)
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:       o.ID(),
		Number:        o.Number(),
		Status:        o.Status(),
		FinalAmount:   o.FinalAmount(),
		Notifications: []notification.Notification{created},
	}, nil
}
