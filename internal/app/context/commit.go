package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.actions = append(rc.actions, action)
	return nil
}

// Pending returns the number of queued actions.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.actions)
}

// Commit runs the queued actions in order. When one fails, those that ran
// before it are rolled back newest first and its error is returned
// wrapped. Rollback failures are logged, not returned.
//
// A RequestContext commits once whatever the outcome; later calls return
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.actions
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)
	for i, a := range actions {
		logger.DebugContext(ctx, "executing action",
			slog.String("action", a.Description()),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
		)
		if err := a.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", a.Description()),
				slog.Int("rollbacks", i),
				slog.Any("error", err),
			)
			undo(ctx, actions[:i], logger)
			return fmt.Errorf("%s: %w", a.Description(), err)
		}
	}
	return nil
}

// undo rolls back done newest first. It runs on a context detached from
// the request's cancellation so a client hanging up cannot strand a
// half-applied change.
func undo(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", done[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}
