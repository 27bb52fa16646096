package services

import (
	"errors"
	"fmt"

	"brick_manager/internal/repository"
)

// ErrConflict reports a write that would break a uniqueness rule.
var ErrConflict = errors.New("conflict")

// ValidationError is returned when input is well formed but not acceptable,
// such as an order for more bricks than are in stock.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, repository.ErrNotFound)
}

func conflictOnDuplicate(err error, format string, args ...interface{}) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
	}
	return err
}
