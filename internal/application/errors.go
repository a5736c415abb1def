package application

import (
	"errors"
	"fmt"

	"ingrain/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidIndex = domain.ErrInvalidIndex
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError wraps ErrNotFound with the procedure id that missed
type NotFoundError struct {
	ProcedureID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("procedure %s not found", e.ProcedureID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
