package todo

import "github.com/jsamuelsen11/todo-gateway/internal/domain"

// FieldState tracks whether a form field has been visited.
type FieldState int

const (
	// Untouched fields are never validated, so nothing shows while the user
	// is still typing for the first time.
	Untouched FieldState = iota
	// Touched fields re-validate on every change.
	Touched
)

// String implements fmt.Stringer.
func (s FieldState) String() string {
	if s == Touched {
		return "touched"
	}
	return "untouched"
}

// FormFields lists the fields a Form validates, in display order.
var FormFields = []string{FieldName, FieldDetail, FieldDueDate, FieldRecurrenceType}

// Form drives incremental validation for a todo edit form. It is not safe
// for concurrent use.
type Form struct {
	raw     RawFields
	touched map[string]bool
	errs    ErrorSet
}

// NewForm returns a form holding initial with every field untouched.
func NewForm(initial RawFields) *Form {
	return &Form{raw: initial, touched: make(map[string]bool)}
}

// State returns the state of field.
func (f *Form) State(field string) FieldState {
	if f.touched[field] {
		return Touched
	}
	return Untouched
}

// Values returns the current raw input.
func (f *Form) Values() RawFields {
	return f.raw
}

// Change records a new value for field and re-validates it when the field
// is touched. It returns the field's current errors.
func (f *Form) Change(field, value string) []domain.FieldError {
	switch field {
	case FieldName:
		f.raw.Name = value
	case FieldDetail:
		f.raw.Detail = value
	case FieldDueDate:
		f.raw.DueDate = value
	case FieldRecurrenceType:
		f.raw.RecurrenceType = value
	default:
		return nil
	}

	if f.touched[field] {
		f.revalidate(field)
	}
	return f.errs.Field(field)
}

// Blur marks field touched and validates it.
func (f *Form) Blur(field string) []domain.FieldError {
	f.touched[field] = true
	f.revalidate(field)
	return f.errs.Field(field)
}

// Submit touches every field, validates the whole form and returns all
// errors. An empty result means the form can be sent.
func (f *Form) Submit() []domain.FieldError {
	for _, field := range FormFields {
		f.touched[field] = true
	}
	f.errs.Apply(FormFields, f.raw.Validate())
	return f.errs.List()
}

// MergeServerErrors folds errors returned by the backing API (for example
// unique_violation) into the form's error set.
func (f *Form) MergeServerErrors(errs []domain.FieldError) {
	f.errs.Merge(errs)
}

// Errors returns every current error in field order.
func (f *Form) Errors() []domain.FieldError {
	return f.errs.List()
}

func (f *Form) revalidate(field string) {
	f.errs.Replace(field, f.raw.ValidateField(field))

	// dueDate's requirement depends on the recurrence, so a touched due date
	// follows recurrence edits.
	if field == FieldRecurrenceType && f.touched[FieldDueDate] {
		f.errs.Replace(FieldDueDate, f.raw.ValidateField(FieldDueDate))
	}
}
