package order

import (
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Monetary constants applied at order creation. Totals are computed once and
// never silently recomputed afterwards.
const (
	// TaxRate is applied to the item total.
	TaxRate = 0.05
	// DeliveryCharge is the flat per-order delivery fee.
	DeliveryCharge = 50.0
)

// OverdueAfter is the age past which a non-terminal order counts as overdue
// in summary reporting.
const OverdueAfter = 7 * 24 * time.Hour

// FormatNumber renders a sequence value as a human-readable order number.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("ORD-%04d", seq)
}

// Order is the aggregate root of the purchase workflow. It owns the pricing
// invariant (finalAmount = totalAmount + tax + delivery charge), the status
// state machine, the role-gated transition policy, and the append-only
// timeline.
//
// Orders are never physically deleted; the lifecycle ends in one of the
// terminal statuses (rejected, cancelled, delivered).
type Order struct {
	id               kernel.UUID
	number           string
	shopkeeperID     kernel.UUID
	companyID        kernel.UUID
	deliveryWorkerID *kernel.UUID

	items          []Item
	totalAmount    float64
	taxAmount      float64
	deliveryCharge float64
	finalAmount    float64

	status   Status
	timeline []TimelineEntry

	prefs           DeliveryPreferences
	notes           string
	rejectionReason string
	deliveredAt     *time.Time
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates an order in pending status with derived totals and a
// seeded timeline. Items must be non-empty and individually valid; the
// delivery preferences carry the required address/area/city.
func NewOrder(
	id kernel.UUID,
	number string,
	shopkeeperID kernel.UUID,
	companyID kernel.UUID,
	items []Item,
	prefs DeliveryPreferences,
	notes string,
	createdBy Actor,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		shopkeeperID.Validate(),
		companyID.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	tax := total * TaxRate

	o := &Order{
		id:             id,
		number:         number,
		shopkeeperID:   shopkeeperID,
		companyID:      companyID,
		items:          append([]Item(nil), items...),
		totalAmount:    total,
		taxAmount:      tax,
		deliveryCharge: DeliveryCharge,
		finalAmount:    total + tax + DeliveryCharge,
		status:         StatusPending,
		prefs:          prefs,
		notes:          notes,
		createdAt:      now,
		isConstructed:  true,
	}
	o.timeline = append(o.timeline, NewTimelineEntry(StatusPending, now, StatusPending.TimelineNote(), createdBy))

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving
// totals or re-seeding the timeline.
func RestoreOrder(
	id kernel.UUID,
	number string,
	shopkeeperID kernel.UUID,
	companyID kernel.UUID,
	deliveryWorkerID *kernel.UUID,
	items []Item,
	totalAmount, taxAmount, deliveryCharge, finalAmount float64,
	status Status,
	timeline []TimelineEntry,
	prefs DeliveryPreferences,
	notes string,
	rejectionReason string,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		shopkeeperID.Validate(),
		companyID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryWorkerID != nil {
		if err := deliveryWorkerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:               id,
		number:           number,
		shopkeeperID:     shopkeeperID,
		companyID:        companyID,
		deliveryWorkerID: deliveryWorkerID,
		items:            append([]Item(nil), items...),
		totalAmount:      totalAmount,
		taxAmount:        taxAmount,
		deliveryCharge:   deliveryCharge,
		finalAmount:      finalAmount,
		status:           status,
		timeline:         append([]TimelineEntry(nil), timeline...),
		prefs:            prefs,
		notes:            notes,
		rejectionReason:  rejectionReason,
		deliveredAt:      deliveredAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) ShopkeeperID() kernel.UUID {
	return o.shopkeeperID
}

func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// DeliveryWorker returns the assigned worker's ID, or nil before assignment.
func (o *Order) DeliveryWorker() *kernel.UUID {
	return o.deliveryWorkerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

func (o *Order) TaxAmount() float64 {
	return o.taxAmount
}

func (o *Order) DeliveryCharge() float64 {
	return o.deliveryCharge
}

func (o *Order) FinalAmount() float64 {
	return o.finalAmount
}

func (o *Order) Status() Status {
	return o.status
}

// Timeline returns a copy of the append-only audit trail.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

func (o *Order) Preferences() DeliveryPreferences {
	return o.prefs
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsParty reports whether the given user is the shopkeeper, company, or
// assigned delivery worker of this order.
func (o *Order) IsParty(id kernel.UUID) bool {
	if o.shopkeeperID.IsEqual(id) || o.companyID.IsEqual(id) {
		return true
	}
	return o.deliveryWorkerID != nil && o.deliveryWorkerID.IsEqual(id)
}

// IsOverdue reports whether the order is non-terminal and older than
// OverdueAfter as of the given instant.
func (o *Order) IsOverdue(asOf time.Time) bool {
	return !o.status.IsTerminal() && asOf.Sub(o.createdAt) > OverdueAfter
}

// AuthorizeTransition enforces the role-gated transition policy:
//   - admin: any transition
//   - company_rep: transitions on orders of their own company
//   - shopkeeper: cancelling their own order, and only while it is pending
//   - delivery_worker: transitions on orders assigned to them
//
// Failures are access-denied errors, distinguishable from not-found.
func (o *Order) AuthorizeTransition(caller user.Caller, target Status) error {
	action := fmt.Sprintf("move order %s to %s", o.number, target)

	switch caller.Role() {
	case user.RoleAdmin:
		return nil
	case user.RoleCompanyRep:
		if !o.companyID.IsEqual(caller.ID()) {
			return errs.NewAccessDeniedErrorWithCause(caller.Role().String(), action,
				errors.New("order belongs to another company"))
		}
		return nil
	case user.RoleShopkeeper:
		if !o.shopkeeperID.IsEqual(caller.ID()) {
			return errs.NewAccessDeniedErrorWithCause(caller.Role().String(), action,
				errors.New("order belongs to another shopkeeper"))
		}
		if target != StatusCancelled || o.status != StatusPending {
			return errs.NewAccessDeniedErrorWithCause(caller.Role().String(), action,
				errors.New("shopkeepers may only cancel their own pending orders"))
		}
		return nil
	case user.RoleDeliveryWorker:
		if o.deliveryWorkerID == nil || !o.deliveryWorkerID.IsEqual(caller.ID()) {
			return errs.NewAccessDeniedErrorWithCause(caller.Role().String(), action,
				errors.New("order is not assigned to this worker"))
		}
		return nil
	}
	return errs.NewAccessDeniedError(caller.Role().String(), action)
}

// ChangeStatus applies a transition from the state machine and its side
// effects: deliveredAt is stamped on first entry into delivered, the
// rejection reason is recorded on rejected/cancelled, and a timeline entry is
// always appended. A failed transition leaves the order untouched.
func (o *Order) ChangeStatus(target Status, actor Actor, reason string, now time.Time) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target

	switch target {
	case StatusDelivered:
		if o.deliveredAt == nil {
			at := now
			o.deliveredAt = &at
		}
	case StatusRejected, StatusCancelled:
		o.rejectionReason = reason
	}

	note := target.TimelineNote()
	if reason != "" {
		note = fmt.Sprintf("%s: %s", note, reason)
	}
	o.timeline = append(o.timeline, NewTimelineEntry(target, now, note, actor))

	return nil
}

// AssignWorker binds a delivery worker and moves the order to assigned.
// Re-assigning the worker already bound is rejected as a business rule.
func (o *Order) AssignWorker(workerID kernel.UUID, actor Actor, now time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if o.deliveryWorkerID != nil && o.deliveryWorkerID.IsEqual(workerID) {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"delivery worker %s is already assigned to order %s", workerID, o.number))
	}
	if err := o.status.CanTransitionTo(StatusAssigned); err != nil {
		return err
	}

	o.deliveryWorkerID = &workerID
	o.status = StatusAssigned
	o.timeline = append(o.timeline, NewTimelineEntry(StatusAssigned, now, StatusAssigned.TimelineNote(), actor))

	return nil
}
