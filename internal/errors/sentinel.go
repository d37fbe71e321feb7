package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or a config schema violation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a document, skeleton or file was not found.
	ErrNotFound = errors.New("not found")
)
