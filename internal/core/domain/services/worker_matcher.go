package services

import (
	"fmt"

	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"
)

// WorkerMatcher is a domain service that decides whether a delivery worker
// is eligible to take an order.
//
// Business rules:
//   - the candidate must hold the delivery_worker role
//   - the candidate must be active
//   - when both the worker's assigned-areas list and the order's delivery
//     area are set, the area must be on the list; either side being empty
//     skips the area check
type WorkerMatcher struct{}

// NewWorkerMatcher creates a new WorkerMatcher instance.
func NewWorkerMatcher() WorkerMatcher {
	return WorkerMatcher{}
}

// Match validates a candidate worker against the order's delivery area.
// Eligibility failures are business rule errors naming the failed check.
func (WorkerMatcher) Match(worker *user.User, area string) error {
	if worker == nil {
		return errs.NewValueIsRequiredError("worker")
	}

	if worker.Role() != user.RoleDeliveryWorker {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"user %s has role %s and cannot be assigned as a delivery worker",
			worker.Name(), worker.Role()))
	}
	if worker.Status() != user.StatusActive {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"delivery worker %s is %s and cannot take new orders",
			worker.Name(), worker.Status()))
	}
	if area != "" && !worker.ServesArea(area) {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"delivery worker %s does not serve area %s", worker.Name(), area))
	}

	return nil
}
