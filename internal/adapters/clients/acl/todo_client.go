package acl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/clients/acl/todo"
	domtodo "github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

var _ ports.TodoClient = (*TodoClient)(nil)

const todosPath = "/todo/"

// TodoClient implements [ports.TodoClient] over the backing API's /todo/
// resource. Paths keep the API's trailing slash.
type TodoClient struct {
	req *Requester
}

// NewTodoClient sends requests through client, whose base URL points at
// the backing API root (for example "http://localhost:8000/api").
func NewTodoClient(client *httpclient.Client) *TodoClient {
	return &TodoClient{req: NewRequester(client)}
}

// ListTodos calls GET /todo/ with q's wire parameters.
func (c *TodoClient) ListTodos(ctx context.Context, q domtodo.Query) ([]domtodo.Todo, error) {
	var dtos []todo.TodoDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: todosPath, Query: q.Values(), Into: &dtos}); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dtos)
}

// GetTodo calls GET /todo/{id}/.
func (c *TodoClient) GetTodo(ctx context.Context, id int64) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: todoPath(id), Into: &dto}); err != nil {
		return nil, err
	}
	return toDomain(&dto)
}

// CreateTodo calls POST /todo/ and expects 201.
func (c *TodoClient) CreateTodo(ctx context.Context, t *domtodo.Todo) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   todosPath,
		Body:   todo.ToWriteRequest(t),
		Want:   http.StatusCreated,
		Into:   &dto,
	})
	if err != nil {
		return nil, err
	}
	return toDomain(&dto)
}

// UpdateTodo calls PUT /todo/{id}/.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, t *domtodo.Todo) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	err := c.req.Do(ctx, Call{Method: http.MethodPut, Path: todoPath(id), Body: todo.ToWriteRequest(t), Into: &dto})
	if err != nil {
		return nil, err
	}
	return toDomain(&dto)
}

// PatchTodo calls PATCH /todo/{id}/ with only the fields p sets.
func (c *TodoClient) PatchTodo(ctx context.Context, id int64, p domtodo.Patch) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	err := c.req.Do(ctx, Call{Method: http.MethodPatch, Path: todoPath(id), Body: todo.ToPatchRequest(p), Into: &dto})
	if err != nil {
		return nil, err
	}
	return toDomain(&dto)
}

// DeleteTodo calls DELETE /todo/{id}/ and expects 204.
func (c *TodoClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodDelete, Path: todoPath(id), Want: http.StatusNoContent})
}

func todoPath(id int64) string {
	return fmt.Sprintf("/todo/%d/", id)
}

func toDomain(dto *todo.TodoDTO) (*domtodo.Todo, error) {
	t, err := todo.ToDomainTodo(dto)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
