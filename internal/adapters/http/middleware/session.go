package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
)

// Session returns middleware that lifts the Authorization bearer token into
// the request context. The gateway never checks the token itself; the
// backing API does, and its 401 surfaces as domain.ErrUnauthorized.
// Requests without a token pass through anonymously.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := session.BearerToken(r.Header.Get("Authorization")); ok {
				r = r.WithContext(session.WithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
