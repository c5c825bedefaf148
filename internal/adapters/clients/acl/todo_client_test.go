package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	domtodo "github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
)

// newTestClient points an httpclient.Client at baseURL with a single attempt
// so error tests stay fast.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "todo-api-test", nil, slog.Default())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		t.Errorf("reading request body: %v", err)
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Errorf("decoding request body %q: %v", raw, err)
	}
	return m
}

func sampleTodo(id int64, name string) map[string]any {
	return map[string]any{
		"id":             id,
		"name":           name,
		"detail":         "",
		"dueDate":        "2026-03-06",
		"progressStatus": "not_started",
		"recurrenceType": "none",
		"createdAt":      "2026-03-01T09:30:00Z",
	}
}

func TestTodoClient_ListTodos(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todo/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("RawQuery = %q, want empty for an unfiltered list", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, []any{sampleTodo(1, "Buy milk"), sampleTodo(2, "Call mom")})
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	todos, err := client.ListTodos(context.Background(), domtodo.Query{})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Buy milk", todos[0].Name)
	assert.Equal(t, int64(2), todos[1].ID)
	assert.Equal(t, domtodo.ProgressNotStarted, todos[0].ProgressStatus)
}

func TestTodoClient_ListTodos_QueryParameters(t *testing.T) {
	t.Parallel()

	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"keyword":         q.Get("keyword"),
			"progress_status": q.Get("progress_status"),
			"due_date":        q.Get("due_date"),
		}
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.ListTodos(context.Background(), domtodo.Query{
		Keyword: "milk",
		Status:  domtodo.ProgressInProgress,
		DueDate: domtodo.DueThisWeek,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"keyword":         "milk",
		"progress_status": "in_progress",
		"due_date":        "this_week",
	}, got)
}

func TestTodoClient_GetTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todo/42/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, sampleTodo(42, "Buy milk"))
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	got, err := client.GetTodo(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-03-06", got.DueDate.Format(time.DateOnly))
}

func TestTodoClient_GetTodo_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.GetTodo(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTodo() error = %v, want ErrNotFound", err)
	}
}

func TestTodoClient_GetTodo_MalformedDueDate(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := sampleTodo(1, "x")
		body["dueDate"] = "2026-02-30"
		writeJSON(t, w, http.StatusOK, body)
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.GetTodo(context.Background(), 1)
	require.Error(t, err)
}

func TestTodoClient_CreateTodo(t *testing.T) {
	t.Parallel()

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todo/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body = readJSON(t, r)
		writeJSON(t, w, http.StatusCreated, sampleTodo(9, "Buy milk"))
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	got, err := client.CreateTodo(context.Background(), &domtodo.Todo{Name: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "Buy milk", body["name"])
	assert.Contains(t, body, "dueDate")
	assert.Nil(t, body["dueDate"])
}

func TestTodoClient_CreateTodo_ValidationError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
			"status": 422,
			"type":   "validation_error",
			"errors": []any{map[string]any{"field": "name", "reason": "unique_violation"}},
		})
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.CreateTodo(context.Background(), &domtodo.Todo{Name: "dup"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []domain.FieldError{{Field: "name", Reason: domain.ReasonUniqueViolation}}, verr.Errors)
}

func TestTodoClient_UpdateTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/todo/3/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := readJSON(t, r)
		resp := sampleTodo(3, body["name"].(string))
		resp["progressStatus"] = body["progressStatus"]
		writeJSON(t, w, http.StatusOK, resp)
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	got, err := client.UpdateTodo(context.Background(), 3, &domtodo.Todo{
		Name:           "Renamed",
		ProgressStatus: domtodo.ProgressCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, domtodo.ProgressCompleted, got.ProgressStatus)
}

func TestTodoClient_PatchTodo_SendsOnlySetFields(t *testing.T) {
	t.Parallel()

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/todo/5/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body = readJSON(t, r)
		writeJSON(t, w, http.StatusOK, sampleTodo(5, "x"))
	}))
	defer ts.Close()

	status := domtodo.ProgressInProgress
	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.PatchTodo(context.Background(), 5, domtodo.Patch{ProgressStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"progressStatus": "in_progress"}, body)
}

func TestTodoClient_DeleteTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todo/11/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	require.NoError(t, client.DeleteTodo(context.Background(), 11))
}

func TestTodoClient_ForwardsSessionToken(t *testing.T) {
	t.Parallel()

	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer ts.Close()

	ctx := session.WithToken(context.Background(), "tok-123")
	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.ListTodos(ctx, domtodo.Query{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
}

func TestTodoClient_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewTodoClient(newTestClient(t, ts.URL))
	_, err := client.GetTodo(context.Background(), 1)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetTodo() error = %v, want ErrUnavailable", err)
	}
}

func TestTodoClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := NewTodoClient(newTestClient(t, "http://127.0.0.1:0"))
	assert.Equal(t, "todo-api-test", client.Name())
	assert.NoError(t, client.HealthCheck(context.Background()))
}
