// Package errs provides the typed errors shared by the domain, the use cases and the
// HTTP boundary.
//
// Error kinds:
//   - ObjectNotFoundError: record absent or not visible to the requester
//   - PermissionDeniedError: authenticated actor whose role does not allow the action
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: field-level
//     validation failures, usually aggregated with errors.Join and flattened by FieldErrors
//   - AlreadyExistsError: unique-constraint conflict, reported as a field-level failure
//   - VersionIsInvalidError: optimistic concurrency conflict
//
// Each error type follows the same pattern: a sentinel variable, a struct with the
// details, constructors with and without cause, Error and Unwrap. Unwrap returns the
// sentinel so callers can classify with errors.Is.
package errs
