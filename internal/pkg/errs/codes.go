package errs

import "errors"

// Code is the stable machine-readable identifier for an error class.
// Codes form a closed set and cross the API boundary unchanged; message
// text is free to vary, codes are not.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeAlreadyExists      Code = "already_exists"
	CodeValidationError    Code = "validation_error"
	CodePermissionDenied   Code = "permission_denied"
	CodeDatabaseError      Code = "database_error"
	CodeUnknownError       Code = "unknown_error"
	CodeImmutableViolation Code = "immutable_violation"
)

// CodeFor classifies an error into its Code. Validation-style errors
// (required, invalid, out of range) all map to CodeValidationError.
// Errors not produced by this package map to CodeUnknownError.
func CodeFor(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return CodeValidationError
	case errors.Is(err, ErrImmutableViolation):
		return CodeImmutableViolation
	case errors.Is(err, ErrDatabase):
		return CodeDatabaseError
	default:
		return CodeUnknownError
	}
}
