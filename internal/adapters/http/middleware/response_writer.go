// Package middleware provides the gateway's inbound HTTP middleware.
//
// Each middleware is a func(http.Handler) http.Handler. Stack returns the
// gateway's set in the order the router installs it:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Session →
//	Language → Logging → Timeout → AppContext → Handler
package middleware

import "net/http"

// responseWriter records the status code and byte count that recovery,
// otel, and logging report.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records code. Only the first call takes effect.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
