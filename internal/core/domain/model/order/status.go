package order

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	pending   ──> approved | rejected | cancelled
//	approved  ──> assigned | cancelled
//	assigned  ──> accepted | rejected_by_worker | cancelled
//	accepted  ──> picked_up | cancelled
//	picked_up ──> delivered | cancelled
//	rejected, cancelled, delivered ──> (terminal)
//
// rejected_by_worker additionally allows assigned and cancelled, so an order
// turned down by one worker can be re-dispatched to another or abandoned.
type Status string

const (
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusAssigned         Status = "assigned"
	StatusAccepted         Status = "accepted"
	StatusRejectedByWorker Status = "rejected_by_worker"
	StatusPickedUp         Status = "picked_up"
	StatusDelivered        Status = "delivered"
	StatusCancelled        Status = "cancelled"
)

// transitions is the single source of truth for the order state machine.
var transitions = map[Status][]Status{
	StatusPending:          {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:         {StatusAssigned, StatusCancelled},
	StatusAssigned:         {StatusAccepted, StatusRejectedByWorker, StatusCancelled},
	StatusAccepted:         {StatusPickedUp, StatusCancelled},
	StatusPickedUp:         {StatusDelivered, StatusCancelled},
	StatusRejectedByWorker: {StatusAssigned, StatusCancelled},
	StatusRejected:         {},
	StatusCancelled:        {},
	StatusDelivered:        {},
}

// Validate checks that the status belongs to the known vocabulary.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the order lifecycle has ended.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusDelivered
}

// CanTransitionTo validates a transition against the state machine.
// The returned error names the attempted source/target pair.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewBusinessRuleError(fmt.Sprintf(
		"cannot transition order from %s to %s", s, target))
}

// TimelineNote returns the human-readable note appended to the timeline when
// the order first enters this status.
func (s Status) TimelineNote() string {
	switch s {
	case StatusPending:
		return "Order created"
	case StatusApproved:
		return "Order approved by company"
	case StatusRejected:
		return "Order rejected by company"
	case StatusAssigned:
		return "Delivery worker assigned"
	case StatusAccepted:
		return "Order accepted by delivery worker"
	case StatusRejectedByWorker:
		return "Order rejected by delivery worker"
	case StatusPickedUp:
		return "Order picked up for delivery"
	case StatusDelivered:
		return "Order delivered"
	case StatusCancelled:
		return "Order cancelled"
	}
	return string(s)
}
