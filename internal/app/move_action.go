package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

var _ domain.Action = (*moveAction)(nil)

// moveAction changes one todo's progress status and can put it back.
// A todo already at the target status is left alone.
type moveAction struct {
	client  ports.TodoClient
	current todo.Todo
	to      todo.ProgressStatus

	result  todo.Todo
	changed bool
}

func (a *moveAction) Execute(ctx context.Context) error {
	if a.current.ProgressStatus == a.to {
		a.result = a.current
		return nil
	}

	to := a.to
	updated, err := a.client.PatchTodo(ctx, a.current.ID, todo.Patch{ProgressStatus: &to})
	if err != nil {
		return err
	}
	a.result = *updated
	a.changed = true
	return nil
}

func (a *moveAction) Rollback(ctx context.Context) error {
	if !a.changed {
		return nil
	}

	from := a.current.ProgressStatus
	if _, err := a.client.PatchTodo(ctx, a.current.ID, todo.Patch{ProgressStatus: &from}); err != nil {
		return fmt.Errorf("restoring todo %d to %s: %w", a.current.ID, from, err)
	}
	a.changed = false
	return nil
}

func (a *moveAction) Description() string {
	return fmt.Sprintf("move todo %d from %s to %s", a.current.ID, a.current.ProgressStatus, a.to)
}
