package order

import (
	"fmt"
	"time"

	"supplyline/internal/pkg/errs"
)

// PaymentMethod is how the order is settled. Payment processing itself is
// outside this service; the method is recorded and passed to the delivery.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentPrepaid        PaymentMethod = "prepaid"
)

// Validate checks that the payment method belongs to the known vocabulary.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCashOnDelivery, PaymentPrepaid:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", string(m)))
}

// DeliveryPreferences captures where and how the shopkeeper wants the order
// delivered. Address, area, and city are required at order creation.
type DeliveryPreferences struct {
	address       string
	area          string
	city          string
	instructions  string
	preferredDate *time.Time
	paymentMethod PaymentMethod
}

// NewDeliveryPreferences creates validated delivery preferences.
func NewDeliveryPreferences(
	address, area, city, instructions string,
	preferredDate *time.Time,
	paymentMethod PaymentMethod,
) (DeliveryPreferences, error) {
	if address == "" {
		return DeliveryPreferences{}, errs.NewValueIsRequiredError("delivery address")
	}
	if area == "" {
		return DeliveryPreferences{}, errs.NewValueIsRequiredError("delivery area")
	}
	if city == "" {
		return DeliveryPreferences{}, errs.NewValueIsRequiredError("delivery city")
	}
	if err := paymentMethod.Validate(); err != nil {
		return DeliveryPreferences{}, err
	}

	return DeliveryPreferences{
		address:       address,
		area:          area,
		city:          city,
		instructions:  instructions,
		preferredDate: preferredDate,
		paymentMethod: paymentMethod,
	}, nil
}

func (p DeliveryPreferences) Address() string {
	return p.address
}

func (p DeliveryPreferences) Area() string {
	return p.area
}

func (p DeliveryPreferences) City() string {
	return p.city
}

func (p DeliveryPreferences) Instructions() string {
	return p.instructions
}

func (p DeliveryPreferences) PreferredDate() *time.Time {
	return p.preferredDate
}

func (p DeliveryPreferences) PaymentMethod() PaymentMethod {
	return p.paymentMethod
}
