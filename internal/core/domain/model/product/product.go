// Package product provides the read model of the external product inventory.
// The workflow consults it for pricing and the order eligibility predicate;
// the only mutation it drives is the atomic stock decrement, which happens in
// the persistence layer inside the order-creating transaction.
package product

import (
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Product is an inventory entry as seen by the order workflow.
type Product struct {
	id               kernel.UUID
	name             string
	unit             string
	unitPrice        float64
	stockQuantity    int
	minOrderQuantity int
	maxOrderQuantity int // 0 means unlimited
	active           bool
}

// NewProduct restores an inventory entry into the read model.
func NewProduct(
	id kernel.UUID,
	name string,
	unit string,
	unitPrice float64,
	stockQuantity int,
	minOrderQuantity int,
	maxOrderQuantity int,
	active bool,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if unitPrice <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than 0", unitPrice))
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	if minOrderQuantity < 1 {
		minOrderQuantity = 1
	}
	if maxOrderQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxOrderQuantity",
			fmt.Errorf("%d is negative", maxOrderQuantity))
	}

	return &Product{
		id:               id,
		name:             name,
		unit:             unit,
		unitPrice:        unitPrice,
		stockQuantity:    stockQuantity,
		minOrderQuantity: minOrderQuantity,
		maxOrderQuantity: maxOrderQuantity,
		active:           active,
	}, nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Unit() string {
	return p.unit
}

func (p *Product) UnitPrice() float64 {
	return p.unitPrice
}

func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

func (p *Product) MinOrderQuantity() int {
	return p.minOrderQuantity
}

// MaxOrderQuantity returns the per-order cap; 0 means unlimited.
func (p *Product) MaxOrderQuantity() int {
	return p.maxOrderQuantity
}

func (p *Product) IsActive() bool {
	return p.active
}

// CheckOrderable is the order eligibility predicate: the product must be
// active, the quantity must lie within [min, max-or-unlimited], and the stock
// must cover it. Violations name the offending values.
func (p *Product) CheckOrderable(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.active {
		return errs.NewBusinessRuleError(fmt.Sprintf("product %s is not available for ordering", p.name))
	}
	if quantity < p.minOrderQuantity {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"quantity %d is below the minimum order quantity %d for %s",
			quantity, p.minOrderQuantity, p.name))
	}
	if p.maxOrderQuantity > 0 && quantity > p.maxOrderQuantity {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"quantity %d exceeds the maximum order quantity %d for %s",
			quantity, p.maxOrderQuantity, p.name))
	}
	if quantity > p.stockQuantity {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"cannot order %d, available %d", quantity, p.stockQuantity))
	}
	return nil
}

// ResolvePrice returns the explicit per-item price when one was supplied,
// otherwise the product's current unit price.
func (p *Product) ResolvePrice(explicit *float64) float64 {
	if explicit != nil && *explicit > 0 {
		return *explicit
	}
	return p.unitPrice
}
