// Package errs provides standardized error types for the orgchart application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an employee, department or project cannot be found
//   - ObjectAlreadyExistsError: For when a key is already taken in a store or container
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - StatusIsInvalidError: For when a project status is outside the fixed set
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The three ValueIs* errors additionally match ErrValidation through errors.Is,
// so callers that only care about "the input was rejected" can test a single sentinel.
package errs
