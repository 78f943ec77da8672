// Package services provides domain services that coordinate business rules
// spanning more than one aggregate.
//
// The package includes:
//   - WorkerMatcher: eligibility checks for assigning a delivery worker to an order
//   - OrderSynchronizer: explicit propagation of a delivery outcome to the parent order
package services
