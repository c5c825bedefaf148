// Package http is the gateway's inbound HTTP adapter: routing and server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// Handlers groups the route handlers NewRouter mounts.
type Handlers struct {
	Todo   *handlers.TodoHandler
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler

	// Localizer renders the 404 body for unknown routes. It may be nil.
	Localizer dto.Localizer
}

// NewRouter creates the gateway's HTTP handler. Middleware is applied
// globally in the order given, outermost first.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, h.Localizer, domain.ErrNotFound)
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/user", h.Auth.CurrentUser)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", h.Todo.ListTodos)
			r.Post("/", h.Todo.CreateTodo)

			// Static segments win over {id} in chi, so these never parse as ids.
			r.Post("/validate", h.Todo.Validate)
			r.Post("/quick-add", h.Todo.QuickAdd)
			r.Post("/quick-add/preview", h.Todo.PreviewQuickAdd)
			r.Post("/move", h.Todo.MoveTodos)
			r.Post("/bulk-delete", h.Todo.BulkDelete)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Todo.GetTodo)
				r.Put("/", h.Todo.UpdateTodo)
				r.Patch("/", h.Todo.PatchTodo)
				r.Delete("/", h.Todo.DeleteTodo)
				r.Put("/progress", h.Todo.SetProgress)
				r.Post("/toggle", h.Todo.Toggle)
			})
		})
	})

	return r
}
