// Package errs provides standardized error types for the pickup wizard.
// It implements a consistent pattern for error creation, formatting and unwrapping
// that is used by the domain model, the use cases and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a value falls outside an allowed range
//   - ObjectNotFoundError: a referenced object does not exist
//   - FieldsAreInvalidError: a form failed validation on one or more fields
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is works against the sentinel
package errs
