package delivery

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// GenerateNumber produces a human-readable delivery number: a DEL prefix,
// the current date, and a random four-digit suffix. Uniqueness is enforced
// by the storage layer, not here.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("DEL%s%04d", now.Format("20060102"), rand.IntN(10000))
}

// Delivery is the physical fulfillment record of an order. It carries
// denormalized snapshots of the participants and line items, the fulfillment
// state machine with set-once milestone timestamps, the proof of delivery,
// and the append-only issue list.
//
// Once terminal (delivered, failed, or returned) the only permitted mutation
// is appending an issue.
type Delivery struct {
	id          kernel.UUID
	number      string
	orderID     kernel.UUID
	orderNumber string

	worker     Party
	shopkeeper Party
	company    Party

	items []Item

	pickupLocation   string
	deliveryLocation string
	area             string

	status  Status
	payment Payment
	proof   *Proof
	issues  []Issue

	assignedAt  time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in assigned status with assignedAt stamped.
// The participant snapshots and item manifest are taken from the order at
// this moment and never refreshed.
func NewDelivery(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	orderNumber string,
	worker, shopkeeper, company Party,
	items []Item,
	pickupLocation, deliveryLocation, area string,
	payment Payment,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("delivery number")
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if deliveryLocation == "" {
		return nil, errs.NewValueIsRequiredError("delivery location")
	}

	return &Delivery{
		id:               id,
		number:           number,
		orderID:          orderID,
		orderNumber:      orderNumber,
		worker:           worker,
		shopkeeper:       shopkeeper,
		company:          company,
		items:            append([]Item(nil), items...),
		pickupLocation:   pickupLocation,
		deliveryLocation: deliveryLocation,
		area:             area,
		status:           StatusAssigned,
		payment:          payment,
		assignedAt:       now,
		createdAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	orderNumber string,
	worker, shopkeeper, company Party,
	items []Item,
	pickupLocation, deliveryLocation, area string,
	status Status,
	payment Payment,
	proof *Proof,
	issues []Issue,
	assignedAt time.Time,
	pickedUpAt, inTransitAt, deliveredAt *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:               id,
		number:           number,
		orderID:          orderID,
		orderNumber:      orderNumber,
		worker:           worker,
		shopkeeper:       shopkeeper,
		company:          company,
		items:            append([]Item(nil), items...),
		pickupLocation:   pickupLocation,
		deliveryLocation: deliveryLocation,
		area:             area,
		status:           status,
		payment:          payment,
		proof:            proof,
		issues:           append([]Issue(nil), issues...),
		assignedAt:       assignedAt,
		pickedUpAt:       pickedUpAt,
		inTransitAt:      inTransitAt,
		deliveredAt:      deliveredAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Number() string {
	return d.number
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) OrderNumber() string {
	return d.orderNumber
}

func (d *Delivery) Worker() Party {
	return d.worker
}

func (d *Delivery) Shopkeeper() Party {
	return d.shopkeeper
}

func (d *Delivery) Company() Party {
	return d.company
}

// Items returns a copy of the manifest lines.
func (d *Delivery) Items() []Item {
	return append([]Item(nil), d.items...)
}

func (d *Delivery) PickupLocation() string {
	return d.pickupLocation
}

func (d *Delivery) DeliveryLocation() string {
	return d.deliveryLocation
}

func (d *Delivery) Area() string {
	return d.area
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Payment() Payment {
	return d.payment
}

// Proof returns the proof of delivery, or nil before completion.
func (d *Delivery) Proof() *Proof {
	return d.proof
}

// Issues returns a copy of the append-only issue list.
func (d *Delivery) Issues() []Issue {
	return append([]Issue(nil), d.issues...)
}

func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

func (d *Delivery) InTransitAt() *time.Time {
	return d.inTransitAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// BelongsToWorker reports whether the delivery is assigned to the given
// worker.
func (d *Delivery) BelongsToWorker(workerID kernel.UUID) bool {
	return d.worker.ID().IsEqual(workerID)
}

// ChangeStatus applies a transition from the state machine and stamps the
// matching milestone timestamp exactly once. Moving to delivered through
// this method is rejected: completion requires proof and goes through
// Complete or CompleteResolved.
func (d *Delivery) ChangeStatus(target Status, now time.Time) error {
	if target == StatusDelivered {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"delivery %s can only reach delivered through completion with proof", d.number))
	}
	return d.transition(target, now)
}

// Complete records the proof of delivery and moves the delivery to
// delivered. The delivery must be picked up or in transit; completing
// straight from assigned is rejected by the state machine.
func (d *Delivery) Complete(proof Proof, now time.Time) error {
	if err := d.transition(StatusDelivered, now); err != nil {
		return err
	}
	d.proof = &proof
	return nil
}

// CompleteResolved moves the delivery to delivered without proof of
// delivery, for the issue path where the worker resolved the problem on the
// spot. A delivery still in assigned is stepped through picked_up first so
// the milestone timestamps stay consistent.
func (d *Delivery) CompleteResolved(now time.Time) error {
	if d.status == StatusAssigned {
		if err := d.transition(StatusPickedUp, now); err != nil {
			return err
		}
	}
	return d.transition(StatusDelivered, now)
}

// Fail moves the delivery to failed.
func (d *Delivery) Fail(now time.Time) error {
	return d.transition(StatusFailed, now)
}

// ReportIssue appends an issue record. Issues may be reported even on a
// terminal delivery; the list is the one part of the record that stays
// mutable.
func (d *Delivery) ReportIssue(issue Issue) {
	d.issues = append(d.issues, issue)
}

func (d *Delivery) transition(target Status, now time.Time) error {
	if err := d.status.CanTransitionTo(target); err != nil {
		return err
	}

	d.status = target

	at := now
	switch target {
	case StatusPickedUp:
		if d.pickedUpAt == nil {
			d.pickedUpAt = &at
		}
	case StatusInTransit:
		if d.inTransitAt == nil {
			d.inTransitAt = &at
		}
	case StatusDelivered:
		if d.deliveredAt == nil {
			d.deliveredAt = &at
		}
	}

	return nil
}
