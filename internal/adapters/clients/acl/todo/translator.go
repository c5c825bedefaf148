package todo

import (
	"fmt"
	"time"

	domtodo "github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// ToDomainTodo converts a wire todo. A malformed dueDate is an error since
// it would otherwise read as "no due date". A malformed createdAt is
// dropped.
func ToDomainTodo(dto *TodoDTO) (domtodo.Todo, error) {
	t := domtodo.Todo{
		ID:             dto.ID,
		Name:           dto.Name,
		Detail:         dto.Detail,
		ProgressStatus: domtodo.ProgressStatus(dto.ProgressStatus),
		RecurrenceType: domtodo.RecurrenceType(dto.RecurrenceType),
	}

	if dto.DueDate != nil && *dto.DueDate != "" {
		d, err := domtodo.ParseDate(*dto.DueDate)
		if err != nil {
			return domtodo.Todo{}, fmt.Errorf("todo %d: dueDate %q: %w", dto.ID, *dto.DueDate, err)
		}
		t.DueDate = &d
	}
	if dto.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, dto.CreatedAt); err == nil {
			t.CreatedAt = ts
		}
	}
	return t, nil
}

// ToDomainTodoList converts a list response.
func ToDomainTodoList(dtos []TodoDTO) ([]domtodo.Todo, error) {
	out := make([]domtodo.Todo, len(dtos))
	for i := range dtos {
		t, err := ToDomainTodo(&dtos[i])
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// ToWriteRequest builds a create or full-update body.
func ToWriteRequest(t *domtodo.Todo) WriteTodoDTO {
	return WriteTodoDTO{
		Name:           t.Name,
		Detail:         t.Detail,
		DueDate:        dateString(t.DueDate),
		ProgressStatus: string(t.ProgressStatus),
		RecurrenceType: string(t.RecurrenceType),
	}
}

// ToPatchRequest builds a partial-update body holding only what p changes.
func ToPatchRequest(p domtodo.Patch) PatchTodoDTO {
	body := PatchTodoDTO{}
	if p.Name != nil {
		body[domtodo.FieldName] = *p.Name
	}
	if p.Detail != nil {
		body[domtodo.FieldDetail] = *p.Detail
	}
	switch {
	case p.ClearDueDate:
		body[domtodo.FieldDueDate] = nil
	case p.DueDate != nil:
		body[domtodo.FieldDueDate] = domtodo.FormatDate(p.DueDate)
	}
	if p.ProgressStatus != nil {
		body[domtodo.FieldProgressStatus] = string(*p.ProgressStatus)
	}
	if p.RecurrenceType != nil {
		body[domtodo.FieldRecurrenceType] = string(*p.RecurrenceType)
	}
	return body
}

func dateString(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := domtodo.FormatDate(d)
	return &s
}
