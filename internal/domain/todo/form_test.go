package todo

import (
	"reflect"
	"testing"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

func TestForm_UntouchedFieldIsNotValidated(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{})
	if got := f.Change(FieldName, ""); len(got) != 0 {
		t.Errorf("Change() before blur = %v, want no errors", got)
	}
	if f.State(FieldName) != Untouched {
		t.Errorf("State(name) = %v, want untouched", f.State(FieldName))
	}
	if got := f.Errors(); len(got) != 0 {
		t.Errorf("Errors() = %v, want none", got)
	}
}

func TestForm_BlurThenChange(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{})

	got := f.Blur(FieldName)
	if !reflect.DeepEqual(got, []domain.FieldError{domain.Required(FieldName)}) {
		t.Fatalf("Blur(name) = %v, want required", got)
	}
	if f.State(FieldName) != Touched {
		t.Errorf("State(name) = %v, want touched", f.State(FieldName))
	}

	if got := f.Change(FieldName, "b"); len(got) != 0 {
		t.Errorf("Change(name, b) = %v, want none", got)
	}
	if got := f.Change(FieldName, ""); len(got) != 1 {
		t.Errorf("Change(name, \"\") = %v, want one error", got)
	}
	if got := f.Errors(); len(got) != 1 {
		t.Errorf("Errors() = %v, want exactly one (no duplicates)", got)
	}
}

func TestForm_RecurrenceChangeRevalidatesTouchedDueDate(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{Name: "x"})
	if got := f.Blur(FieldDueDate); len(got) != 0 {
		t.Fatalf("Blur(dueDate) = %v, want none", got)
	}

	f.Blur(FieldRecurrenceType)
	f.Change(FieldRecurrenceType, string(RecurrenceWeekly))

	want := []domain.FieldError{domain.Required(FieldDueDate)}
	if got := f.Errors(); !reflect.DeepEqual(got, want) {
		t.Errorf("Errors() = %v, want %v", got, want)
	}

	f.Change(FieldDueDate, "2026-03-06")
	if got := f.Errors(); len(got) != 0 {
		t.Errorf("Errors() after setting due date = %v, want none", got)
	}
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{RecurrenceType: "weekly"})
	got := f.Submit()
	want := []domain.FieldError{
		domain.Required(FieldName),
		domain.Required(FieldDueDate),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Submit() = %v, want %v", got, want)
	}
	for _, field := range FormFields {
		if f.State(field) != Touched {
			t.Errorf("State(%s) = %v after submit, want touched", field, f.State(field))
		}
	}
}

func TestForm_MergeServerErrors(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{Name: "dup"})
	f.Submit()
	f.MergeServerErrors([]domain.FieldError{{Field: FieldName, Reason: domain.ReasonUniqueViolation}})

	if got := f.Errors(); len(got) != 1 || got[0].Reason != domain.ReasonUniqueViolation {
		t.Fatalf("Errors() = %v, want unique_violation", got)
	}

	f.Change(FieldName, "fresh")
	if got := f.Errors(); len(got) != 0 {
		t.Errorf("Errors() after edit = %v, want server error cleared", got)
	}
}

func TestForm_UnknownField(t *testing.T) {
	t.Parallel()

	f := NewForm(RawFields{Name: "x"})
	if got := f.Change("color", "red"); got != nil {
		t.Errorf("Change(color) = %v, want nil", got)
	}
	if f.Values() != (RawFields{Name: "x"}) {
		t.Errorf("Values() = %+v, want unchanged", f.Values())
	}
}
