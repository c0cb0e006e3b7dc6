package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates a uniqueness violation (e.g. username or slug taken)
	ErrDuplicate = errors.New("duplicate entity")

	// ErrDanglingCategory indicates an article whose CategoryID resolves to
	// nothing. Categories are seeded and never deleted, so this is a
	// programming error surfaced loudly rather than a handled case.
	ErrDanglingCategory = errors.New("article references missing category")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
