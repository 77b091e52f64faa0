// Package errs provides standardized error types for the restaurant order
// tracking application. It implements a consistent pattern for error
// creation, formatting, and unwrapping that is used throughout the
// application.
//
// The package defines one error type per failure classification:
//   - ValueIsRequiredError: a required value is missing (bad request)
//   - ValueIsInvalidError: a value is malformed or invalid (bad request)
//   - ObjectNotFoundError: a referenced object cannot be found (not found)
//   - ObjectAlreadyExistsError: a creation collision (conflict)
//   - AccessForbiddenError: the actor lacks role or ownership (forbidden)
//   - PreconditionFailedError: a conditional write lost a race (conflict)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// Transport adapters map the sentinels onto their protocol's status codes,
// so callers always receive a stable classification and a human-readable
// message rather than a raw internal error string.
package errs
