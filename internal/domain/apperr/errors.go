// Package apperr defines the error taxonomy surfaced by the API: validation
// failures, missing documents, blocked deletions and malformed requests.
// Anything outside the taxonomy is treated as a store failure.
package apperr

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries per-field constraint violations.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError reports an unresolvable ID or a missing document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found with ID %s", e.Resource, e.ID)
}

// ConflictError reports a deletion blocked by an existing reference.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// BadRequestError reports a request rejected before entity construction,
// such as a missing or non-JSON content type.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}
