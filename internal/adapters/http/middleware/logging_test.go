package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/todos", http.NoBody))

	out := buf.String()
	for _, want := range []string{"request started", "request completed", "POST", "/api/v1/todos", "status=201", "bytes=8", "session=anonymous"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_ServerErrorsLogAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	if !strings.Contains(buf.String(), `level=WARN msg="request completed"`) {
		t.Errorf("completion not logged at WARN:\n%s", buf.String())
	}
}

func TestLogging_StoresEnrichedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for line := range strings.Lines(buf.String()) {
		if strings.Contains(line, "inside handler") {
			if !strings.Contains(line, "request_id=req-log-test") || !strings.Contains(line, "correlation_id=req-log-test") {
				t.Errorf("handler log line missing IDs: %s", line)
			}
			return
		}
	}
	t.Error("handler log line not found")
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept-Language", "ja")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "secret-token") {
		t.Error("log output contains the bearer token")
	}
	if !strings.Contains(out, "Accept-Language=ja") {
		t.Errorf("log output missing Accept-Language:\n%s", out)
	}
}
