// Package errs provides standardized error types for the commerce application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error family per failure class:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     request-shape validation failures the caller must fix
//   - ObjectNotFoundError: a referenced order, item, product, or address is absent
//   - DomainRuleViolationError: a well-formed request violates a domain contract
//     (wrong status, illegal transition, insufficient stock)
//   - ConcurrencyConflictError: an optimistic-concurrency check failed at commit
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
