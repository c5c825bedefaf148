package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/todo-gateway/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// RequestContext. Services use it to memoize backing API reads and to queue
// the all-or-nothing steps of a bulk move.
//
// Register it innermost so the context handed to services already carries
// the session token, logger and deadline.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New()
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
