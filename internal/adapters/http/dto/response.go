// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses. Field names
// match the backing API so clients can treat both alike.
type TodoResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Detail         string  `json:"detail"`
	DueDate        *string `json:"dueDate"`
	ProgressStatus string  `json:"progressStatus"`
	RecurrenceType string  `json:"recurrenceType"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:             t.ID,
		Name:           t.Name,
		Detail:         t.Detail,
		ProgressStatus: t.ProgressStatus.String(),
		RecurrenceType: t.RecurrenceType.String(),
	}
	if t.DueDate != nil {
		d := todo.FormatDate(t.DueDate)
		resp.DueDate = &d
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// ToTodoResponses converts a slice, never returning nil.
func ToTodoResponses(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// QueryResponse echoes the normalized search. Empty fields did not filter.
type QueryResponse struct {
	Keyword string `json:"keyword,omitempty"`
	Status  string `json:"status,omitempty"`
	DueDate string `json:"dueDate,omitempty"`
}

// ProgressResponse counts the listed todos per status.
type ProgressResponse struct {
	Total      int `json:"total"`
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Percent    int `json:"percent"`
}

// TodoListResponse is the body of GET /api/v1/todos.
type TodoListResponse struct {
	Todos    []TodoResponse   `json:"todos"`
	Count    int              `json:"count"`
	Query    QueryResponse    `json:"query"`
	Progress ProgressResponse `json:"progress"`
}

// ToTodoListResponse converts a search result.
func ToTodoListResponse(res *ports.SearchResult) TodoListResponse {
	items := ToTodoResponses(res.Todos)
	return TodoListResponse{
		Todos: items,
		Count: len(items),
		Query: QueryResponse{
			Keyword: res.Query.Keyword,
			Status:  string(res.Query.Status),
			DueDate: string(res.Query.DueDate),
		},
		Progress: ProgressResponse{
			Total:      res.Progress.Total,
			NotStarted: res.Progress.NotStarted,
			InProgress: res.Progress.InProgress,
			Completed:  res.Progress.Completed,
			Percent:    res.Progress.Percent(),
		},
	}
}

// QuickAddResponse is the body of the quick-add endpoints. Todo is only set
// once a todo was created.
type QuickAddResponse struct {
	Locale  string        `json:"locale"`
	Name    string        `json:"name"`
	DueDate *string       `json:"dueDate"`
	Matched string        `json:"matched,omitempty"`
	Todo    *TodoResponse `json:"todo,omitempty"`
}

// ToQuickAddResponse converts a quick-add outcome.
func ToQuickAddResponse(out *ports.QuickAddOutcome) QuickAddResponse {
	resp := QuickAddResponse{
		Locale:  out.Locale,
		Name:    out.Parsed.Name,
		Matched: out.Parsed.Matched,
	}
	if out.Parsed.DueDate != nil {
		d := out.Parsed.DueDateString()
		resp.DueDate = &d
	}
	if out.Todo != nil {
		t := ToTodoResponse(out.Todo)
		resp.Todo = &t
	}
	return resp
}

// QuickAddErrorResponse is a 422 problem that also carries what the parser
// understood, so a client can show the interpretation next to the errors.
type QuickAddErrorResponse struct {
	ErrorResponse
	Parsed QuickAddResponse `json:"parsed"`
}

// ValidateResponse is the body of POST /api/v1/todos/validate.
type ValidateResponse struct {
	Valid  bool          `json:"valid"`
	Errors []ErrorDetail `json:"errors"`
}

// ToValidateResponse converts the validator's output.
func ToValidateResponse(ctx context.Context, loc Localizer, errs []domain.FieldError) ValidateResponse {
	return ValidateResponse{Valid: len(errs) == 0, Errors: FieldErrorDetails(ctx, loc, errs)}
}

// MoveTodosResponse is the body of POST /api/v1/todos/move.
type MoveTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// BulkDeleteResponse represents the result of a bulk delete. Every requested
// id appears in Deleted or Errors.
type BulkDeleteResponse struct {
	Deleted   []int64               `json:"deleted"`
	Errors    []BulkDeleteErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkDeleteErrorItem represents a single failed delete.
type BulkDeleteErrorItem struct {
	TodoID  int64  `json:"todoId"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToBulkDeleteResponse converts a ports.BulkDeleteResult.
func ToBulkDeleteResponse(result *ports.BulkDeleteResult) BulkDeleteResponse {
	errs := make([]BulkDeleteErrorItem, len(result.Failed))
	for i, f := range result.Failed {
		errs[i] = BulkDeleteErrorItem{
			TodoID:  f.ID,
			Status:  StatusOf(f.Err),
			Message: f.Err.Error(),
		}
	}

	deleted := result.Deleted
	if deleted == nil {
		deleted = []int64{}
	}
	return BulkDeleteResponse{
		Deleted:   deleted,
		Errors:    errs,
		Total:     len(deleted) + len(errs),
		Succeeded: len(deleted),
		Failed:    len(errs),
	}
}

// UserResponse is an account in HTTP responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain user.
func ToUserResponse(u *auth.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// SessionResponse is the body of a successful login or register.
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToSessionResponse converts a domain session.
func ToSessionResponse(s *auth.Session) SessionResponse {
	return SessionResponse{User: ToUserResponse(&s.User), Token: s.Token}
}
