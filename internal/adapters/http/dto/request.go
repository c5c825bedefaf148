package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

// TodoRequest is the body of POST /api/v1/todos and PUT /api/v1/todos/{id}.
// A missing or null dueDate means no due date.
type TodoRequest struct {
	Name           string  `json:"name"`
	Detail         string  `json:"detail"`
	DueDate        *string `json:"dueDate"`
	ProgressStatus string  `json:"progressStatus,omitempty"`
	RecurrenceType string  `json:"recurrenceType,omitempty"`
}

// ToTodo converts the request. A due date that is not an ISO calendar date
// is reported as invalid_format; every other rule is left to the service.
func (r *TodoRequest) ToTodo() (*todo.Todo, error) {
	t := &todo.Todo{
		Name:           r.Name,
		Detail:         r.Detail,
		ProgressStatus: todo.ProgressStatus(r.ProgressStatus),
		RecurrenceType: todo.RecurrenceType(r.RecurrenceType),
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		d, err := todo.ParseDate(strings.TrimSpace(*r.DueDate))
		if err != nil {
			return nil, domain.NewValidationError([]domain.FieldError{domain.InvalidFormat(todo.FieldDueDate)})
		}
		t.DueDate = &d
	}
	return t, nil
}

// PatchTodoRequest is the body of PATCH /api/v1/todos/{id}. Absent fields
// are left alone; "dueDate": null (or "") clears the due date.
type PatchTodoRequest struct {
	Name           *string         `json:"name"`
	Detail         *string         `json:"detail"`
	DueDate        json.RawMessage `json:"dueDate"`
	ProgressStatus *string         `json:"progressStatus"`
	RecurrenceType *string         `json:"recurrenceType"`
}

// ToPatch converts the request, reporting enum and date format errors
// together.
func (r *PatchTodoRequest) ToPatch() (todo.Patch, error) {
	p := todo.Patch{Name: r.Name, Detail: r.Detail}
	var errs []domain.FieldError

	if len(r.DueDate) > 0 {
		switch raw := bytes.TrimSpace(r.DueDate); {
		case bytes.Equal(raw, []byte("null")):
			p.ClearDueDate = true
		default:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				errs = append(errs, domain.InvalidFormat(todo.FieldDueDate))
				break
			}
			if strings.TrimSpace(s) == "" {
				p.ClearDueDate = true
				break
			}
			d, err := todo.ParseDate(strings.TrimSpace(s))
			if err != nil {
				errs = append(errs, domain.InvalidFormat(todo.FieldDueDate))
				break
			}
			p.DueDate = &d
		}
	}
	if r.ProgressStatus != nil {
		s := todo.ProgressStatus(*r.ProgressStatus)
		if !s.IsValid() {
			errs = append(errs, domain.InvalidFormat(todo.FieldProgressStatus))
		}
		p.ProgressStatus = &s
	}
	if r.RecurrenceType != nil {
		rt := todo.RecurrenceType(*r.RecurrenceType)
		if !rt.IsValid() {
			errs = append(errs, domain.InvalidFormat(todo.FieldRecurrenceType))
		}
		p.RecurrenceType = &rt
	}

	if err := domain.NewValidationError(errs); err != nil {
		return todo.Patch{}, err
	}
	return p, nil
}

// ProgressRequest is the body of PUT /api/v1/todos/{id}/progress.
type ProgressRequest struct {
	ProgressStatus string `json:"progressStatus"`
}

// QuickAddRequest is the body of the quick-add endpoints. BaseDate pins
// "today" for relative expressions; Locale overrides Accept-Language.
type QuickAddRequest struct {
	Text           string `json:"text"`
	Detail         string `json:"detail"`
	RecurrenceType string `json:"recurrenceType"`
	BaseDate       string `json:"baseDate"`
	Locale         string `json:"locale"`
}

// ToInput converts the request.
func (r *QuickAddRequest) ToInput() (ports.QuickAddInput, error) {
	in := ports.QuickAddInput{
		Text:           r.Text,
		Detail:         r.Detail,
		RecurrenceType: todo.RecurrenceType(r.RecurrenceType),
		Locale:         r.Locale,
	}
	if r.BaseDate != "" {
		base, err := time.Parse(time.DateOnly, r.BaseDate)
		if err != nil {
			return ports.QuickAddInput{}, BadRequest("baseDate %q is not a YYYY-MM-DD date", r.BaseDate)
		}
		in.Base = base
	}
	return in, nil
}

// FormValues are raw form inputs as the user typed them.
type FormValues struct {
	Name           string `json:"name"`
	Detail         string `json:"detail"`
	DueDate        string `json:"dueDate"`
	RecurrenceType string `json:"recurrenceType"`
}

// FieldErrorPayload is a field error a client sends back, as previously
// received in an ErrorDetail.
type FieldErrorPayload struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Limit  *int   `json:"limit,omitempty"`
}

// ValidateRequest is the body of POST /api/v1/todos/validate. Touched and
// Errors are optional; see ports.ValidateInput.
type ValidateRequest struct {
	Values  FormValues          `json:"values"`
	Touched []string            `json:"touched"`
	Errors  []FieldErrorPayload `json:"errors"`
}

// ToInput converts the request. Echoed errors with an unknown reason are
// dropped.
func (r *ValidateRequest) ToInput() ports.ValidateInput {
	in := ports.ValidateInput{
		Values: todo.RawFields{
			Name:           r.Values.Name,
			Detail:         r.Values.Detail,
			DueDate:        r.Values.DueDate,
			RecurrenceType: r.Values.RecurrenceType,
		},
		Touched: r.Touched,
	}
	for _, e := range r.Errors {
		fe := domain.FieldError{Field: e.Field, Reason: domain.Reason(e.Reason)}
		if !fe.Reason.IsValid() || fe.Field == "" {
			continue
		}
		if e.Limit != nil {
			fe.Limit = *e.Limit
		}
		in.Errors = append(in.Errors, fe)
	}
	return in
}

// MoveTodosRequest is the body of POST /api/v1/todos/move.
type MoveTodosRequest struct {
	IDs            []int64 `json:"ids"`
	ProgressStatus string  `json:"progressStatus"`
}

// BulkDeleteRequest is the body of POST /api/v1/todos/bulk-delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToCredentials converts the request.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Username: r.Username, Password: r.Password}
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToRegistration converts the request.
func (r *RegisterRequest) ToRegistration() auth.Registration {
	return auth.Registration{Username: r.Username, Email: r.Email, Password: r.Password}
}
