// Package todo holds the backing API's todo wire shapes and their
// translation to and from domain todos.
package todo

// TodoDTO is a todo as the backing API returns it. DueDate is YYYY-MM-DD or
// null; CreatedAt is RFC 3339.
type TodoDTO struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Detail         string  `json:"detail"`
	DueDate        *string `json:"dueDate"`
	ProgressStatus string  `json:"progressStatus"`
	RecurrenceType string  `json:"recurrenceType"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// WriteTodoDTO is the body of POST /todo/ and PUT /todo/{id}/. A nil
// DueDate is sent as null.
type WriteTodoDTO struct {
	Name           string  `json:"name"`
	Detail         string  `json:"detail"`
	DueDate        *string `json:"dueDate"`
	ProgressStatus string  `json:"progressStatus,omitempty"`
	RecurrenceType string  `json:"recurrenceType,omitempty"`
}

// PatchTodoDTO is the body of PATCH /todo/{id}/. Only present keys change;
// a present null dueDate clears the date.
type PatchTodoDTO map[string]any
