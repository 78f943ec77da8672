package order

import (
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Item is a line of an order. The product name and unit price are snapshots
// taken at creation time, so later catalog edits do not rewrite history.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   float64
	lineTotal   float64
	unit        string
}

// NewItem creates a validated order line. The line total is derived, never
// supplied.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice float64, unit string) (Item, error) {
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
	if unitPrice <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than 0", unitPrice))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   float64(quantity) * unitPrice,
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

func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i Item) LineTotal() float64 {
	return i.lineTotal
}

func (i Item) Unit() string {
	return i.unit
}
