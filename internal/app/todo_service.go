// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/todo-gateway/internal/app/context"
	"github.com/jsamuelsen11/todo-gateway/internal/app/fanout"
	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/quickadd"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/i18n"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/latest"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// FieldIDs names the id list of move and bulk-delete requests in
// validation errors.
const FieldIDs = "ids"

// TodoLimits holds the tunables TodoService reads from configuration.
type TodoLimits struct {
	// SearchKeyPrefix names the latest-wins slot for searches; the caller's
	// session key is appended.
	SearchKeyPrefix string
	// BulkMaxWorkers bounds concurrent backing API calls of a bulk delete.
	BulkMaxWorkers int
	// BulkMaxItems caps the ids accepted by move and bulk delete. Zero
	// means no cap.
	BulkMaxItems int
}

// TodoService implements ports.TodoService on top of the backing API. It
// validates locally before every write so obviously bad input never costs a
// round trip, and it is the only place that knows about latest-wins search
// and request-scoped rollback.
type TodoService struct {
	client   ports.TodoClient
	catalog  *quickadd.Catalog
	searches *latest.Registry
	limits   TodoLimits
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewTodoService creates a TodoService. metrics may be nil; a nil logger
// discards.
func NewTodoService(
	client ports.TodoClient,
	catalog *quickadd.Catalog,
	searches *latest.Registry,
	limits TodoLimits,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		client:   client,
		catalog:  catalog,
		searches: searches,
		limits:   limits,
		metrics:  metrics,
		logger:   logger,
	}
}

// Search normalizes state and lists the matching todos. Each session has one
// search slot: starting a search cancels the previous one still running, and
// a search that lost its slot reports domain.ErrSuperseded even if its
// response already arrived. Requests without a token have no session and
// take no slot; the backing API answers them.
func (s *TodoService) Search(ctx context.Context, state todo.SearchState) (*ports.SearchResult, error) {
	q, _ := todo.NormalizeSearchQuery(state)
	s.logger.InfoContext(ctx, "searching todos", slog.String("query", q.Key()))

	searchCtx, finish := ctx, func() {}
	if _, ok := session.Token(ctx); ok {
		searchCtx, finish = s.searches.Start(ctx, s.limits.SearchKeyPrefix+":"+session.KeyFromContext(ctx))
	}
	defer finish()

	todos, err := s.client.ListTodos(searchCtx, q)
	if latest.Superseded(searchCtx) {
		s.recordSearch(ctx, telemetry.SearchSuperseded)
		s.logger.InfoContext(ctx, "search superseded", slog.String("query", q.Key()))
		return nil, fmt.Errorf("searching todos: %w", domain.ErrSuperseded)
	}
	if err != nil {
		s.recordSearch(ctx, telemetry.SearchFailed)
		s.logger.ErrorContext(ctx, "failed to search todos",
			slog.String("operation", "Search"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.recordSearch(ctx, telemetry.SearchCompleted)
	return &ports.SearchResult{Query: q, Todos: todos, Progress: todo.Summarize(todos)}, nil
}

// Get returns one todo. Repeated reads of the same id within a request are
// served from the request context.
func (s *TodoService) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("id", id))

	td, err := s.fetch(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Get"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return td, nil
}

// Create validates and creates a todo.
func (s *TodoService) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo")

	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateTodo(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.remember(ctx, created)
	return created, nil
}

// Update validates and replaces a todo.
func (s *TodoService) Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int64("id", id))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateTodo(ctx, id, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.remember(ctx, updated)
	return updated, nil
}

// Patch validates the todo as it would look after p and sends only p. An
// empty patch returns the current todo unchanged.
func (s *TodoService) Patch(ctx context.Context, id int64, p todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "patching todo", slog.Int64("id", id))

	current, err := s.fetch(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for patch",
			slog.String("operation", "Patch"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if p.IsEmpty() {
		return current, nil
	}

	next := p.Apply(*current)
	if err := next.Validate(); err != nil {
		return nil, err
	}

	return s.patch(ctx, "Patch", id, p)
}

// SetProgress moves a todo to status.
func (s *TodoService) SetProgress(ctx context.Context, id int64, status todo.ProgressStatus) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "setting todo progress",
		slog.Int64("id", id),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, domain.NewValidationError([]domain.FieldError{domain.InvalidFormat(todo.FieldProgressStatus)})
	}
	return s.patch(ctx, "SetProgress", id, todo.Patch{ProgressStatus: &status})
}

// Toggle flips a todo between completed and not started.
func (s *TodoService) Toggle(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "toggling todo", slog.Int64("id", id))

	current, err := s.fetch(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for toggle",
			slog.String("operation", "Toggle"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	next := current.ProgressStatus.Toggled()
	return s.patch(ctx, "Toggle", id, todo.Patch{ProgressStatus: &next})
}

// Delete removes a todo.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("id", id))

	if err := s.client.DeleteTodo(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	appctx.FromContext(ctx).Forget(todoKey(id))
	return nil
}

// QuickAdd parses in.Text, validates the resulting todo and creates it. On
// a validation failure the parse is still returned with the error so the
// caller can show what was understood.
func (s *TodoService) QuickAdd(ctx context.Context, in ports.QuickAddInput) (*ports.QuickAddOutcome, error) {
	s.logger.InfoContext(ctx, "quick-adding todo")

	out := s.parse(ctx, in)
	t := &todo.Todo{
		Name:           out.Parsed.Name,
		Detail:         in.Detail,
		DueDate:        out.Parsed.DueDate,
		RecurrenceType: in.RecurrenceType,
	}
	if err := t.Validate(); err != nil {
		return out, err
	}

	created, err := s.client.CreateTodo(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create quick-add todo",
			slog.String("operation", "QuickAdd"),
			slog.String("locale", out.Locale),
			slog.Any("error", err),
		)
		return out, err
	}
	s.remember(ctx, created)
	out.Todo = created
	return out, nil
}

// PreviewQuickAdd parses in.Text without creating anything.
func (s *TodoService) PreviewQuickAdd(ctx context.Context, in ports.QuickAddInput) *ports.QuickAddOutcome {
	return s.parse(ctx, in)
}

// Validate runs the field rules over a form snapshot. A submit (no touched
// fields) reports every failure. Otherwise only the touched fields are
// re-checked and their results replace those fields' entries in in.Errors;
// errors on other fields are returned as the client sent them. As in
// todo.Form, a recurrence edit also re-checks a due date that was already
// validated, since whether it is required depends on the recurrence.
func (s *TodoService) Validate(ctx context.Context, in ports.ValidateInput) []domain.FieldError {
	if len(in.Touched) == 0 {
		errs := in.Values.Validate()
		if errs == nil {
			errs = []domain.FieldError{}
		}
		return errs
	}

	set := todo.NewErrorSet(in.Errors...)
	fields := slices.Clone(in.Touched)
	if slices.Contains(fields, todo.FieldRecurrenceType) && !slices.Contains(fields, todo.FieldDueDate) &&
		set.Has(todo.FieldDueDate) {
		fields = append(fields, todo.FieldDueDate)
	}

	var fresh []domain.FieldError
	for _, field := range fields {
		fresh = append(fresh, in.Values.ValidateField(field)...)
	}
	set.Apply(fields, fresh)

	s.logger.DebugContext(ctx, "validated touched fields",
		slog.Any("touched", in.Touched),
		slog.Int("errors", set.Len()),
	)
	return set.List()
}

// MoveTodos sets every todo in ids to status. The moves run one after
// another; if any fails, those already applied are reverted newest first
// and the failure is returned.
func (s *TodoService) MoveTodos(ctx context.Context, ids []int64, status todo.ProgressStatus) ([]todo.Todo, error) {
	ids = uniqueIDs(ids)
	s.logger.InfoContext(ctx, "moving todos",
		slog.Int("count", len(ids)),
		slog.String("status", status.String()),
	)

	var errs []domain.FieldError
	if !status.IsValid() {
		errs = append(errs, domain.InvalidFormat(todo.FieldProgressStatus))
	}
	errs = append(errs, s.checkIDs(ids)...)
	if err := domain.NewValidationError(errs); err != nil {
		return nil, err
	}
	s.recordBulk(ctx, "move", len(ids))

	rc := appctx.FromContext(ctx)
	moves := make([]*moveAction, len(ids))
	for i, id := range ids {
		current, err := s.fetch(ctx, id)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch todo for move",
				slog.String("operation", "MoveTodos"),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
			return nil, err
		}
		moves[i] = &moveAction{client: s.client, current: *current, to: status}
		if err := rc.AddAction(moves[i]); err != nil {
			return nil, fmt.Errorf("queueing move of todo %d: %w", id, err)
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to move todos",
			slog.String("operation", "MoveTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	moved := make([]todo.Todo, len(moves))
	for i, m := range moves {
		moved[i] = m.result
		s.remember(ctx, &moved[i])
	}
	return moved, nil
}

// BulkDelete deletes every todo in ids with bounded concurrency. Items fail
// independently; the error is only for requests that could not start.
func (s *TodoService) BulkDelete(ctx context.Context, ids []int64) (*ports.BulkDeleteResult, error) {
	ids = uniqueIDs(ids)
	s.logger.InfoContext(ctx, "bulk deleting todos", slog.Int("count", len(ids)))

	if err := domain.NewValidationError(s.checkIDs(ids)); err != nil {
		return nil, err
	}
	s.recordBulk(ctx, "delete", len(ids))

	results := fanout.Run(ctx, s.limits.BulkMaxWorkers, ids, func(ctx context.Context, id int64) (struct{}, error) {
		return struct{}{}, s.client.DeleteTodo(ctx, id)
	})

	out := &ports.BulkDeleteResult{Deleted: []int64{}, Failed: []ports.BulkItemError{}}
	rc := appctx.FromContext(ctx)
	for i, r := range results {
		if r.Err != nil {
			out.Failed = append(out.Failed, ports.BulkItemError{ID: ids[i], Err: r.Err})
			continue
		}
		out.Deleted = append(out.Deleted, ids[i])
		rc.Forget(todoKey(ids[i]))
	}

	if len(out.Failed) > 0 {
		s.logger.ErrorContext(ctx, "bulk delete partially failed",
			slog.String("operation", "BulkDelete"),
			slog.Int("failed", len(out.Failed)),
			slog.Any("error", fanout.Join(results)),
		)
	}
	return out, nil
}

func (s *TodoService) parse(ctx context.Context, in ports.QuickAddInput) *ports.QuickAddOutcome {
	var parser *quickadd.Parser
	if in.Locale != "" {
		parser = s.catalog.Locale(in.Locale)
	} else {
		parser = s.catalog.ForAcceptLanguage(strings.Join(i18n.Languages(ctx), ","))
	}

	res := parser.Parse(in.Text, in.Base)
	if s.metrics != nil {
		s.metrics.QuickAddTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrLocale.String(parser.Locale()),
			attribute.Bool("matched", res.DueDate != nil),
		))
	}
	return &ports.QuickAddOutcome{Locale: parser.Locale(), Parsed: res}
}

func (s *TodoService) fetch(ctx context.Context, id int64) (*todo.Todo, error) {
	return appctx.GetOrFetch(ctx, appctx.FromContext(ctx), todoKey(id), func(ctx context.Context) (*todo.Todo, error) {
		return s.client.GetTodo(ctx, id)
	})
}

func (s *TodoService) patch(ctx context.Context, op string, id int64, p todo.Patch) (*todo.Todo, error) {
	updated, err := s.client.PatchTodo(ctx, id, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to patch todo",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.remember(ctx, updated)
	return updated, nil
}

// remember makes later reads in the same request see t.
func (s *TodoService) remember(ctx context.Context, t *todo.Todo) {
	appctx.FromContext(ctx).Put(todoKey(t.ID), t)
}

func (s *TodoService) checkIDs(ids []int64) []domain.FieldError {
	switch {
	case len(ids) == 0:
		return []domain.FieldError{domain.Required(FieldIDs)}
	case s.limits.BulkMaxItems > 0 && len(ids) > s.limits.BulkMaxItems:
		return []domain.FieldError{domain.MaxLength(FieldIDs, s.limits.BulkMaxItems)}
	default:
		return nil
	}
}

func (s *TodoService) recordSearch(ctx context.Context, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.SearchTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(outcome)))
}

func (s *TodoService) recordBulk(ctx context.Context, op string, n int) {
	if s.metrics == nil {
		return
	}
	s.metrics.BulkItems.Record(ctx, int64(n), metric.WithAttributes(attribute.String("operation", op)))
}

func todoKey(id int64) string {
	return fmt.Sprintf("todo:%d", id)
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
