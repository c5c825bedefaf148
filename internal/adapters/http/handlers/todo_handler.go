package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

// TodoHandler handles the /api/v1/todos endpoints.
type TodoHandler struct {
	svc ports.TodoService
	loc dto.Localizer
}

// NewTodoHandler creates a TodoHandler. loc renders error messages and may
// be nil.
func NewTodoHandler(svc ports.TodoService, loc dto.Localizer) *TodoHandler {
	return &TodoHandler{svc: svc, loc: loc}
}

func (h *TodoHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	dto.WriteErrorResponse(w, r, h.loc, err)
}

// ListTodos handles GET /api/v1/todos?keyword=&status=&dueDate=.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	state, errs := todo.ParseSearchState(r.URL.Query())
	if err := domain.NewValidationError(errs); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Search(r.Context(), state)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(res))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.TodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := req.ToTodo()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), t)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PUT /api/v1/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req dto.TodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := req.ToTodo()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, t)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// PatchTodo handles PATCH /api/v1/todos/{id}.
func (h *TodoHandler) PatchTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req dto.PatchTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.Patch(r.Context(), id, p)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetProgress handles PUT /api/v1/todos/{id}/progress.
func (h *TodoHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req dto.ProgressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.SetProgress(r.Context(), id, todo.ProgressStatus(req.ProgressStatus))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// Toggle handles POST /api/v1/todos/{id}/toggle.
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// QuickAdd handles POST /api/v1/todos/quick-add. A validation failure
// answers 422 with the parse alongside the field errors.
func (h *TodoHandler) QuickAdd(w http.ResponseWriter, r *http.Request) {
	in, ok := h.quickAddInput(w, r)
	if !ok {
		return
	}

	out, err := h.svc.QuickAdd(r.Context(), in)
	if err != nil {
		if out != nil && errors.Is(err, domain.ErrValidation) {
			problem := dto.NewErrorResponse(r, h.loc, err)
			writeProblem(w, problem.Status, dto.QuickAddErrorResponse{
				ErrorResponse: problem,
				Parsed:        dto.ToQuickAddResponse(out),
			})
			return
		}
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToQuickAddResponse(out))
}

// PreviewQuickAdd handles POST /api/v1/todos/quick-add/preview.
func (h *TodoHandler) PreviewQuickAdd(w http.ResponseWriter, r *http.Request) {
	in, ok := h.quickAddInput(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuickAddResponse(h.svc.PreviewQuickAdd(r.Context(), in)))
}

// Validate handles POST /api/v1/todos/validate. It always answers 200; the
// body says whether the form is valid.
func (h *TodoHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	errs := h.svc.Validate(r.Context(), req.ToInput())
	writeJSON(w, http.StatusOK, dto.ToValidateResponse(r.Context(), h.loc, errs))
}

// MoveTodos handles POST /api/v1/todos/move.
func (h *TodoHandler) MoveTodos(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveTodosRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	moved, err := h.svc.MoveTodos(r.Context(), req.IDs, todo.ProgressStatus(req.ProgressStatus))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	items := dto.ToTodoResponses(moved)
	writeJSON(w, http.StatusOK, dto.MoveTodosResponse{Todos: items, Count: len(items)})
}

// BulkDelete handles POST /api/v1/todos/bulk-delete. It answers 200 even
// when some items failed; the body lists each outcome.
func (h *TodoHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkDeleteResponse(res))
}

func (h *TodoHandler) quickAddInput(w http.ResponseWriter, r *http.Request) (ports.QuickAddInput, bool) {
	var req dto.QuickAddRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return ports.QuickAddInput{}, false
	}
	in, err := req.ToInput()
	if err != nil {
		h.fail(w, r, err)
		return ports.QuickAddInput{}, false
	}
	return in, true
}
