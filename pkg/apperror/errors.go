package apperror

import "fmt"

// ValidationError reports a violated field constraint. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a single field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing record.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for a resource identifier.
func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// DomainErr marks a rejected state transition. Matched with errors.Is
// against the sentinels below.
type DomainErr string

func (e DomainErr) Error() string { return string(e) }

var (
	// ErrOrderCompleted is returned when mutating or re-completing an
	// order whose completed_at is already set.
	ErrOrderCompleted = DomainErr("order already completed")

	// ErrInsufficientStock is returned when a decrement would drive a
	// product's inventory below zero.
	ErrInsufficientStock = DomainErr("insufficient stock")
)
