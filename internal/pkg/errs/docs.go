// Package errs provides standardized error types for the tableside application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a duplicate object is inserted
//   - ImmutableViolationError: For when append-only storage rejects a mutation
//   - DatabaseError: For opaque storage failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Every error classifies into exactly one Code, the stable machine-readable
// identifier that crosses the API boundary. CodeFor maps any error to its
// code, falling back to CodeUnknownError for errors this package does not
// know about. In particular, an ImmutableViolationError reported by the
// price-ledger storage is kept distinct from a generic DatabaseError so
// callers can tell "tried to mutate history" apart from "database unreachable".
package errs
