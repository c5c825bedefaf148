package todo

import "github.com/jsamuelsen11/todo-gateway/internal/domain"

// ErrorSet holds the current validation errors keyed by field. Replacing a
// field's errors never touches other fields, so repeated validation passes
// cannot accumulate duplicates. Fields keep the order they first appeared in.
// The zero value is ready to use.
type ErrorSet struct {
	order   []string
	byField map[string][]domain.FieldError
}

// NewErrorSet returns a set seeded with errs.
func NewErrorSet(errs ...domain.FieldError) *ErrorSet {
	s := &ErrorSet{}
	s.Merge(errs)
	return s
}

// Replace sets field's errors to those in errs that belong to field. An
// empty result clears the field.
func (s *ErrorSet) Replace(field string, errs []domain.FieldError) {
	var own []domain.FieldError
	for _, e := range errs {
		if e.Field == field {
			own = append(own, e)
		}
	}

	if s.byField == nil {
		s.byField = make(map[string][]domain.FieldError)
	}
	_, existed := s.byField[field]

	if len(own) == 0 {
		if existed {
			delete(s.byField, field)
			s.removeFromOrder(field)
		}
		return
	}

	s.byField[field] = own
	if !existed {
		s.order = append(s.order, field)
	}
}

// Apply replaces the errors of every field in fields, plus any field that
// appears in errs. Use it after a validation pass that covered fields.
func (s *ErrorSet) Apply(fields []string, errs []domain.FieldError) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			s.Replace(f, errs)
		}
	}
	for _, e := range errs {
		if !seen[e.Field] {
			seen[e.Field] = true
			s.Replace(e.Field, errs)
		}
	}
}

// Merge upserts only the fields present in errs. Merging nothing is a no-op.
func (s *ErrorSet) Merge(errs []domain.FieldError) {
	s.Apply(nil, errs)
}

// Field returns the current errors for field.
func (s *ErrorSet) Field(field string) []domain.FieldError {
	return s.byField[field]
}

// Has reports whether field currently has errors.
func (s *ErrorSet) Has(field string) bool {
	return len(s.byField[field]) > 0
}

// Len returns the total number of errors.
func (s *ErrorSet) Len() int {
	n := 0
	for _, errs := range s.byField {
		n += len(errs)
	}
	return n
}

// List flattens the set in field order.
func (s *ErrorSet) List() []domain.FieldError {
	out := make([]domain.FieldError, 0, s.Len())
	for _, f := range s.order {
		out = append(out, s.byField[f]...)
	}
	return out
}

// Err returns the set as a *domain.ValidationError, or nil when empty.
func (s *ErrorSet) Err() error {
	return domain.NewValidationError(s.List())
}

func (s *ErrorSet) removeFromOrder(field string) {
	for i, f := range s.order {
		if f == field {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
