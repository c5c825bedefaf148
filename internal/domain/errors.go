package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")

	// ErrSuperseded marks an operation abandoned because a newer request
	// under the same key replaced it.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// Reason tags why a single field failed validation.
type Reason string

const (
	ReasonRequired        Reason = "required"
	ReasonUniqueViolation Reason = "unique_violation"
	ReasonMaxLength       Reason = "max_length"
	ReasonMinLength       Reason = "min_length"
	ReasonInvalidFormat   Reason = "invalid_format"
)

// IsValid returns true if the reason is one of the defined constants.
func (r Reason) IsValid() bool {
	switch r {
	case ReasonRequired, ReasonUniqueViolation, ReasonMaxLength, ReasonMinLength, ReasonInvalidFormat:
		return true
	default:
		return false
	}
}

// HasLimit reports whether errors with this reason carry a length limit.
func (r Reason) HasLimit() bool {
	return r == ReasonMaxLength || r == ReasonMinLength
}

// FieldError is a reason attached to a field name. Limit is only meaningful
// for max_length and min_length.
type FieldError struct {
	Field  string
	Reason Reason
	Limit  int
}

// Required returns a required error for field.
func Required(field string) FieldError {
	return FieldError{Field: field, Reason: ReasonRequired}
}

// MaxLength returns a max_length error for field.
func MaxLength(field string, limit int) FieldError {
	return FieldError{Field: field, Reason: ReasonMaxLength, Limit: limit}
}

// InvalidFormat returns an invalid_format error for field.
func InvalidFormat(field string) FieldError {
	return FieldError{Field: field, Reason: ReasonInvalidFormat}
}

func (e FieldError) String() string {
	if e.Reason.HasLimit() {
		return fmt.Sprintf("%s: %s(%d)", e.Field, e.Reason, e.Limit)
	}
	return e.Field + ": " + string(e.Reason)
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Errors in the order they were produced.
type ValidationError struct {
	Errors []FieldError
	Detail string
}

// NewValidationError returns nil when errs is empty, so callers can write
// `if err := NewValidationError(errs); err != nil`.
func NewValidationError(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.String())
	}
	if len(parts) == 0 && e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
