package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/quickadd"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// TodoService is the todo use-case port called by inbound handlers.
type TodoService interface {
	// Search lists todos for a search form. A newer search from the same
	// session cancels this one, which then returns domain.ErrSuperseded.
	Search(ctx context.Context, state todo.SearchState) (*SearchResult, error)

	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create validates t locally before calling the backing API.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Update replaces the editable fields of todo id.
	Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// Patch validates the todo as it would look after p, then sends p.
	Patch(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error)

	SetProgress(ctx context.Context, id int64, status todo.ProgressStatus) (*todo.Todo, error)

	// Toggle flips completed to not_started and anything else to completed.
	Toggle(ctx context.Context, id int64) (*todo.Todo, error)

	Delete(ctx context.Context, id int64) error

	// QuickAdd parses one line of text into a todo and creates it.
	QuickAdd(ctx context.Context, in QuickAddInput) (*QuickAddOutcome, error)

	// PreviewQuickAdd parses without creating anything.
	PreviewQuickAdd(ctx context.Context, in QuickAddInput) *QuickAddOutcome

	// Validate runs field validation for a form. See ValidateInput.
	Validate(ctx context.Context, in ValidateInput) []domain.FieldError

	// MoveTodos sets every todo in ids to status, all or nothing.
	MoveTodos(ctx context.Context, ids []int64, status todo.ProgressStatus) ([]todo.Todo, error)

	// BulkDelete deletes each todo independently. The error is reserved for
	// request-level problems; per-item failures land in the result.
	BulkDelete(ctx context.Context, ids []int64) (*BulkDeleteResult, error)
}

// AuthService is the account use-case port.
type AuthService interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
	Register(ctx context.Context, reg auth.Registration) (*auth.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*auth.User, error)
}

// SearchResult is one page of todos with the query that produced it.
// Query is the zero value when the form had no criteria.
type SearchResult struct {
	Query    todo.Query
	Todos    []todo.Todo
	Progress todo.Progress
}

// QuickAddInput is one line of quick-add text plus the optional fields the
// quick-add form also carries. A zero Base means today; an empty Locale
// uses the caller's language preferences.
type QuickAddInput struct {
	Text           string
	Detail         string
	RecurrenceType todo.RecurrenceType
	Base           time.Time
	Locale         string
}

// QuickAddOutcome is the parse plus, for QuickAdd, the created todo.
type QuickAddOutcome struct {
	Locale string
	Parsed quickadd.Result
	Todo   *todo.Todo
}

// ValidateInput is a form snapshot. With no Touched fields every field is
// validated (a submit). Otherwise only the touched fields are re-validated
// and the result is upserted into Errors, leaving other fields' errors as
// the client last saw them.
type ValidateInput struct {
	Values  todo.RawFields
	Touched []string
	Errors  []domain.FieldError
}

// BulkDeleteResult lists the outcome of every requested id.
type BulkDeleteResult struct {
	Deleted []int64
	Failed  []BulkItemError
}

// BulkItemError is one failed item of a bulk request.
type BulkItemError struct {
	ID  int64
	Err error
}
