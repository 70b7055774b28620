package models

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by the storage layer and the classifier.
// Handlers dispatch on these with errors.Is, never by inspecting
// driver-specific codes.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrForeignKey     = errors.New("referenced record does not exist")
	ErrNegativeWindow = errors.New("expiry window must not be negative")
)

// FieldError describes a single failed field check in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field failures for one request payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
