package todo

import (
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// Wire and error field names.
const (
	FieldName           = "name"
	FieldDetail         = "detail"
	FieldDueDate        = "dueDate"
	FieldProgressStatus = "progressStatus"
	FieldRecurrenceType = "recurrenceType"
)

// Todo represents a task record owned by the backing API.
type Todo struct {
	ID             int64
	Name           string
	Detail         string
	DueDate        *time.Time
	ProgressStatus ProgressStatus
	RecurrenceType RecurrenceType
	CreatedAt      time.Time
}

// Fields returns the user-editable subset of t.
func (t *Todo) Fields() Fields {
	return Fields{
		Name:       t.Name,
		Detail:     t.Detail,
		DueDate:    t.DueDate,
		Recurrence: t.RecurrenceType,
	}
}

// IsCompleted reports whether the todo is in the completed state.
func (t *Todo) IsCompleted() bool {
	return t.ProgressStatus == ProgressCompleted
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field
// details, or nil if all rules pass.
func (t *Todo) Validate() error {
	errs := ValidateFields(t.Fields())
	if t.ProgressStatus != "" && !t.ProgressStatus.IsValid() {
		errs = append(errs, domain.InvalidFormat(FieldProgressStatus))
	}
	if t.RecurrenceType != "" && !t.RecurrenceType.IsValid() {
		errs = append(errs, domain.InvalidFormat(FieldRecurrenceType))
	}
	return domain.NewValidationError(errs)
}

// Patch is a partial update. Nil pointers leave the field untouched;
// ClearDueDate removes the due date and wins over DueDate.
type Patch struct {
	Name           *string
	Detail         *string
	DueDate        *time.Time
	ClearDueDate   bool
	ProgressStatus *ProgressStatus
	RecurrenceType *RecurrenceType
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Detail == nil && p.DueDate == nil && !p.ClearDueDate &&
		p.ProgressStatus == nil && p.RecurrenceType == nil
}

// Apply returns a copy of t with the patch applied.
func (p Patch) Apply(t Todo) Todo {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Detail != nil {
		t.Detail = *p.Detail
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.ProgressStatus != nil {
		t.ProgressStatus = *p.ProgressStatus
	}
	if p.RecurrenceType != nil {
		t.RecurrenceType = *p.RecurrenceType
	}
	return t
}
