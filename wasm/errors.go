package wasm

import "fmt"

// ValidationError is returned when a Module, or one of its function bodies, violates the
// WebAssembly specification under the enabled feature set.
//
// There is exactly one error kind: a human-readable message identifying the first rule
// violated. Validation stops at the first offending declaration or instruction, so a
// returned error always describes a single violation.
type ValidationError struct {
	message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.message
}

// validationErrorf is the only constructor of ValidationError. Everything surfaced to a
// caller of Module.Validate or CodeValidationStream goes through here; internal invariant
// breaches panic with a "BUG:" prefix instead.
func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

// invalidIndexError reports an out-of-range index into one of the module's index spaces.
func invalidIndexError(kind string, index, count uint32) error {
	return validationErrorf("invalid %s index %d, must be less than %d", kind, index, count)
}
