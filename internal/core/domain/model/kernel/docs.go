// Package kernel provides core domain primitives shared by the supply-chain
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//
// These primitives are immutable and thread-safe, and enforce their invariants
// through constructor functions.
package kernel
