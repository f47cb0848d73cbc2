// Package errs provides standardized error types for the supply-chain core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind:
//   - ObjectNotFoundError: a referenced order, event or line item does not exist
//   - IllegalTransitionError: an operation was invoked from a state that forbids it
//   - DuplicateItemError: an item set contains a repeated item identifier
//   - ImmutableEventError: an attempt to edit an automatic event
//   - InvalidEventTypeError: a manual event was requested with a non-manual type
//   - ValueIsRequiredError: an operation requires data that was not supplied
//   - ValueIsInvalidError, ValueIsOutOfRangeError: input validation failures
//   - VersionIsInvalidError: an aggregate was saved from a stale snapshot
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrIllegalTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
package errs
