// Package errs provides standardized error types for the agritrace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the custody-chain core:
//   - ObjectNotFoundError: a referenced crop/order/dispute does not exist
//   - InvalidStateTransitionError: a lifecycle transition is not in the allowed
//     table; carries both the current and the requested state
//   - UnauthorizedError: the acting party lacks the required role or relationship
//   - ConcurrencyConflictError: an optimistic version check failed (retryable)
//   - ValueIsRequiredError/ValueIsInvalidError/ValueIsOutOfRangeError: malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// Adapter code wraps storage and transport failures into one of these kinds so
// that callers keep a stable contract independent of the storage technology.
package errs
