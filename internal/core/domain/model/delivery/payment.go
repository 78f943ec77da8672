package delivery

import (
	"fmt"

	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/errs"
)

// Payment tells the worker how the order is settled at the door. For
// cash_on_delivery the amount to collect equals the order's final amount;
// prepaid deliveries collect nothing.
type Payment struct {
	method          order.PaymentMethod
	amountToCollect float64
}

// NewPayment creates validated payment instructions.
func NewPayment(method order.PaymentMethod, amountToCollect float64) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if amountToCollect < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("amountToCollect",
			fmt.Errorf("%v is negative", amountToCollect))
	}
	return Payment{method: method, amountToCollect: amountToCollect}, nil
}

func (p Payment) Method() order.PaymentMethod {
	return p.method
}

func (p Payment) AmountToCollect() float64 {
	return p.amountToCollect
}
