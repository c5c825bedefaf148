package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
)

// errPanic is what clients see after a recovered panic. The panic value and
// stack only go to the log.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged 500
// problem response. If the handler already wrote headers, only the log
// entry is emitted. http.ErrAbortHandler is re-panicked so net/http can
// abort the connection as intended.
func Recovery(logger *slog.Logger, loc dto.Localizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, loc, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
