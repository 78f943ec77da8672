package commands

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested order line. The unit price is optional:
// when nil the catalog price applies, when set it overrides (negotiated
// pricing).
type OrderItemInput struct {
	productID kernel.UUID
	quantity  int
	unitPrice *float64
}

// NewOrderItemInput creates a validated order line request.
func NewOrderItemInput(productID kernel.UUID, quantity int, unitPrice *float64) (OrderItemInput, error) {
	if err := productID.Validate(); err != nil {
		return OrderItemInput{}, err
	}
	if quantity <= 0 {
		return OrderItemInput{}, errs.NewValueIsInvalidError("quantity")
	}
	if unitPrice != nil && *unitPrice <= 0 {
		return OrderItemInput{}, errs.NewValueIsInvalidError("unitPrice")
	}
	return OrderItemInput{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

// ProductID returns the requested product.
func (i OrderItemInput) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i OrderItemInput) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price override, or nil for the catalog price.
func (i OrderItemInput) UnitPrice() *float64 {
	return i.unitPrice
}

// CreateOrderCommand represents a shopkeeper's request to order products
// from a company. Carries the requested lines and the delivery preferences.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	items     []OrderItemInput
	prefs     order.DeliveryPreferences
	notes     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// that the company ID is valid and at least one item is requested; the
// delivery preferences are validated by their own constructor.
func NewCreateOrderCommand(
	companyID kernel.UUID,
	items []OrderItemInput,
	address, area, city, instructions string,
	preferredDate *time.Time,
	paymentMethod order.PaymentMethod,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := companyID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	prefs, err := order.NewDeliveryPreferences(address, area, city, instructions, preferredDate, paymentMethod)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.companyID = companyID
	cmd.items = append([]OrderItemInput(nil), items...)
	cmd.prefs = prefs
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CompanyID returns the supplying company.
func (c CreateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

// Preferences returns the delivery preferences.
func (c CreateOrderCommand) Preferences() order.DeliveryPreferences {
	return c.prefs
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
