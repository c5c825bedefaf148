package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// Field length limits, mirrored from the backing API.
const (
	NameMaxLength   = 100
	DetailMaxLength = 500
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = time.DateOnly

// Fields are the user-editable values checked by ValidateFields.
type Fields struct {
	Name       string
	Detail     string
	DueDate    *time.Time
	Recurrence RecurrenceType
}

// ValidateFields runs every field rule and collects all failures in
// name, detail, dueDate order. It returns nil when the fields are valid.
func ValidateFields(f Fields) []domain.FieldError {
	var errs []domain.FieldError
	errs = append(errs, validateName(f.Name)...)
	errs = append(errs, validateDetail(f.Detail)...)
	errs = append(errs, validateDueDate(f.DueDate, f.Recurrence)...)
	return errs
}

// ValidateField runs only the rules that report on field.
func ValidateField(f Fields, field string) []domain.FieldError {
	switch field {
	case FieldName:
		return validateName(f.Name)
	case FieldDetail:
		return validateDetail(f.Detail)
	case FieldDueDate:
		return validateDueDate(f.DueDate, f.Recurrence)
	default:
		return nil
	}
}

func validateName(name string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.Required(FieldName))
	}
	if utf8.RuneCountInString(name) > NameMaxLength {
		errs = append(errs, domain.MaxLength(FieldName, NameMaxLength))
	}
	return errs
}

func validateDetail(detail string) []domain.FieldError {
	if utf8.RuneCountInString(detail) > DetailMaxLength {
		return []domain.FieldError{domain.MaxLength(FieldDetail, DetailMaxLength)}
	}
	return nil
}

func validateDueDate(due *time.Time, recurrence RecurrenceType) []domain.FieldError {
	if recurrence.Recurs() && due == nil {
		return []domain.FieldError{domain.Required(FieldDueDate)}
	}
	return nil
}

// ParseDate parses an ISO YYYY-MM-DD date. Dates that do not exist on the
// calendar (2026-02-30) are rejected.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders d as YYYY-MM-DD, or "" when d is nil.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

// RawFields holds unparsed form input as typed by a user.
type RawFields struct {
	Name           string
	Detail         string
	DueDate        string
	RecurrenceType string
}

// Parse converts raw input into Fields. A blank due date is absent and a
// blank recurrence is none; anything unparseable yields invalid_format.
func (r RawFields) Parse() (Fields, []domain.FieldError) {
	f := Fields{Name: r.Name, Detail: r.Detail, Recurrence: RecurrenceNone}
	var errs []domain.FieldError

	if s := strings.TrimSpace(r.DueDate); s != "" {
		d, err := ParseDate(s)
		if err != nil {
			errs = append(errs, domain.InvalidFormat(FieldDueDate))
		} else {
			f.DueDate = &d
		}
	}
	if s := strings.TrimSpace(r.RecurrenceType); s != "" {
		rt := RecurrenceType(s)
		if !rt.IsValid() {
			errs = append(errs, domain.InvalidFormat(FieldRecurrenceType))
		} else {
			f.Recurrence = rt
		}
	}
	return f, errs
}

// Validate parses r and runs the field rules. A field that failed to parse
// reports only its format error.
func (r RawFields) Validate() []domain.FieldError {
	return r.validate(func(f Fields) []domain.FieldError { return ValidateFields(f) })
}

// ValidateField is Validate restricted to one field.
func (r RawFields) ValidateField(field string) []domain.FieldError {
	errs := r.validate(func(f Fields) []domain.FieldError { return ValidateField(f, field) })
	out := errs[:0]
	for _, e := range errs {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

func (r RawFields) validate(rules func(Fields) []domain.FieldError) []domain.FieldError {
	f, parseErrs := r.Parse()
	bad := make(map[string]bool, len(parseErrs))
	for _, e := range parseErrs {
		bad[e.Field] = true
	}

	var errs []domain.FieldError
	for _, e := range rules(f) {
		if !bad[e.Field] {
			errs = append(errs, e)
		}
	}
	return append(errs, parseErrs...)
}
