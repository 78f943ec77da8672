// Package order provides the Order aggregate of the supply-chain workflow:
// order lines with snapshot pricing, derived monetary totals, the status
// state machine, role-gated transition policy, and the append-only timeline
// that serves as audit trail.
//
// Key business rules:
//   - finalAmount = totalAmount + 5% tax + flat delivery charge, fixed at creation
//   - status moves only along the defined transition table
//   - the timeline only grows; failed operations append nothing
//   - a shopkeeper may only cancel their own order while it is still pending
package order
