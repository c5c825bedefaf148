package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// TodoClient reaches the backing API's todo endpoints. The caller's bearer
// token travels in ctx. Every method returns domain.ErrUnauthorized when the
// token is missing or rejected, and a *domain.ValidationError when the
// backing API answers 422.
type TodoClient interface {
	// ListTodos returns the todos matching q. A zero Query lists everything.
	ListTodos(ctx context.Context, q todo.Query) ([]todo.Todo, error)

	// GetTodo returns domain.ErrNotFound for an unknown id.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo replaces every editable field of the todo.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// PatchTodo sends only the fields set in p.
	PatchTodo(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error)

	DeleteTodo(ctx context.Context, id int64) error
}

// AuthClient reaches the backing API's auth endpoints.
type AuthClient interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
	Register(ctx context.Context, reg auth.Registration) (*auth.Session, error)

	// Logout invalidates the token carried in ctx.
	Logout(ctx context.Context) error

	// CurrentUser resolves the token carried in ctx.
	CurrentUser(ctx context.Context) (*auth.User, error)
}
