package delivery

import (
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Item is a snapshot of an order line carried along for the worker's
// manifest. Prices stay on the order; the delivery only needs what to hand
// over.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unit        string
}

// NewItem creates a validated manifest line.
func NewItem(productID kernel.UUID, productName string, quantity int, unit string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unit:        unit,
	}, nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Unit() string {
	return i.unit
}
