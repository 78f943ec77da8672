package delivery

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery:
//
//	assigned ──> picked_up ──> in_transit ──> delivered
//
// failed is reachable from any non-terminal status (issue resolution path),
// delivered additionally from picked_up (an issue resolved before transit),
// and returned from any non-terminal status by operator override. delivered,
// failed, and returned are terminal.
type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
	StatusReturned  Status = "returned"
)

var transitions = map[Status][]Status{
	StatusAssigned:  {StatusPickedUp, StatusFailed, StatusReturned},
	StatusPickedUp:  {StatusInTransit, StatusDelivered, StatusFailed, StatusReturned},
	StatusInTransit: {StatusDelivered, StatusFailed, StatusReturned},
	StatusDelivered: {},
	StatusFailed:    {},
	StatusReturned:  {},
}

// Validate checks that the status belongs to the known vocabulary.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid delivery status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the delivery lifecycle has ended.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusReturned
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
		"cannot transition delivery from %s to %s", s, target))
}
