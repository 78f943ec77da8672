// Package errs provides standardized error types for the supply-chain workflow
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers the workflow error taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not allowed
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a referenced object cannot be found
//   - AccessDeniedError: the caller's role/ownership fails an access rule
//   - BusinessRuleError: a domain rule is violated (invalid transition,
//     insufficient stock, worker/area mismatch, ...)
//   - ConflictError: a business key uniqueness violation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAccessDenied)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies errors
//
// The HTTP adapter maps the sentinels to response codes; anything outside this
// taxonomy is surfaced as an opaque server error.
package errs
