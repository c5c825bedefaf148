package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason    Reason
		valid     bool
		withLimit bool
	}{
		{reason: ReasonRequired, valid: true},
		{reason: ReasonUniqueViolation, valid: true},
		{reason: ReasonMaxLength, valid: true, withLimit: true},
		{reason: ReasonMinLength, valid: true, withLimit: true},
		{reason: ReasonInvalidFormat, valid: true},
		{reason: "too_short"},
		{reason: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			t.Parallel()
			if got := tt.reason.IsValid(); got != tt.valid {
				t.Errorf("Reason(%q).IsValid() = %v, want %v", tt.reason, got, tt.valid)
			}
			if got := tt.reason.HasLimit(); got != tt.withLimit {
				t.Errorf("Reason(%q).HasLimit() = %v, want %v", tt.reason, got, tt.withLimit)
			}
		})
	}
}

func TestFieldError_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fe   FieldError
		want string
	}{
		{fe: Required("name"), want: "name: required"},
		{fe: MaxLength("detail", 500), want: "detail: max_length(500)"},
		{fe: InvalidFormat("dueDate"), want: "dueDate: invalid_format"},
		{fe: FieldError{Field: "password", Reason: ReasonMinLength, Limit: 8}, want: "password: min_length(8)"},
	}

	for _, tt := range tests {
		if got := tt.fe.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	if err := NewValidationError(nil); err != nil {
		t.Errorf("NewValidationError(nil) = %v, want nil", err)
	}

	err := NewValidationError([]FieldError{Required("name"), MaxLength("detail", 500)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("errors.Is(%v, ErrValidation) = false", err)
	}
	if got, want := err.Error(), "validation error: name: required; detail: max_length(500)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var verr *ValidationError
	if !errors.As(fmt.Errorf("creating todo: %w", err), &verr) {
		t.Fatal("wrapped error lost its *ValidationError")
	}
	if len(verr.Errors) != 2 || verr.Errors[0].Field != "name" {
		t.Errorf("Errors = %v, want name first", verr.Errors)
	}
}

func TestValidationError_DetailOnly(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Detail: "body is not valid JSON"}
	if got, want := err.Error(), "validation error: body is not valid JSON"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
