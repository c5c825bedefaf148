package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	acltodo "github.com/jsamuelsen11/todo-gateway/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
)

// startGateway runs the real gateway in front of a fake backend seeded with
// the named todos, which get ids 1, 2, ...
func startGateway(t *testing.T, names ...string) (*httptest.Server, *fakeBackend) {
	t.Helper()

	backend := newFakeBackend(backendToken)
	for _, name := range names {
		backend.create(acltodo.WriteTodoDTO{Name: name})
	}
	bs := httptest.NewServer(backend)
	t.Cleanup(bs.Close)

	gw, err := newGateway(bs.URL)
	require.NoError(t, err)
	gs := httptest.NewServer(gw)
	t.Cleanup(gs.Close)
	return gs, backend
}

// call sends an authenticated JSON request and decodes a JSON reply into
// into when it is not nil.
func call(t *testing.T, gs *httptest.Server, method, path string, body, into any) int {
	t.Helper()

	var rd io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, gs.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+backendToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := gs.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if into != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp.StatusCode
}

func TestGateway_GetAndToggleForwardToken(t *testing.T) {
	t.Parallel()
	gs, backend := startGateway(t, "Buy milk")

	var got dto.TodoResponse
	require.Equal(t, http.StatusOK, call(t, gs, http.MethodGet, "/api/v1/todos/1", nil, &got))
	assert.Equal(t, "Buy milk", got.Name)

	var toggled dto.TodoResponse
	require.Equal(t, http.StatusOK, call(t, gs, http.MethodPost, "/api/v1/todos/1/toggle", nil, &toggled))
	assert.Equal(t, "completed", toggled.ProgressStatus)
	assert.Equal(t, "completed", backend.status(1))

	assert.Zero(t, backend.unauthorized, "backend saw requests without the bearer token")
}

func TestGateway_PatchTodo(t *testing.T) {
	t.Parallel()
	gs, backend := startGateway(t, "Buy milk")

	var got dto.TodoResponse
	status := call(t, gs, http.MethodPatch, "/api/v1/todos/1", map[string]any{"name": "Buy oat milk"}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Buy oat milk", got.Name)
	assert.Equal(t, []string{"/todo/1/"}, backend.callsWithMethod(http.MethodPatch))
	assert.Zero(t, backend.unauthorized)
}

func TestGateway_MoveRollsBackOnFailure(t *testing.T) {
	t.Parallel()
	gs, backend := startGateway(t, "first", "second")
	backend.mu.Lock()
	backend.failPatch[2] = true
	backend.mu.Unlock()

	body := dto.MoveTodosRequest{IDs: []int64{1, 2}, ProgressStatus: "completed"}
	status := call(t, gs, http.MethodPost, "/api/v1/todos/move", body, nil)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "not_started", backend.status(1), "first move was not rolled back")
	assert.Equal(t, []string{"/todo/1/", "/todo/2/", "/todo/1/"}, backend.callsWithMethod(http.MethodPatch))
	assert.Zero(t, backend.unauthorized)
}

func TestGateway_MoveAppliesEveryTodo(t *testing.T) {
	t.Parallel()
	gs, backend := startGateway(t, "first", "second")

	var got dto.MoveTodosResponse
	body := dto.MoveTodosRequest{IDs: []int64{1, 2}, ProgressStatus: "in_progress"}
	require.Equal(t, http.StatusOK, call(t, gs, http.MethodPost, "/api/v1/todos/move", body, &got))

	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "in_progress", backend.status(1))
	assert.Equal(t, "in_progress", backend.status(2))
}

func TestGateway_BulkDelete(t *testing.T) {
	t.Parallel()
	gs, backend := startGateway(t, "first", "second")

	var got dto.BulkDeleteResponse
	body := dto.BulkDeleteRequest{IDs: []int64{1, 2, 99}}
	require.Equal(t, http.StatusOK, call(t, gs, http.MethodPost, "/api/v1/todos/bulk-delete", body, &got))

	assert.Equal(t, []int64{1, 2}, got.Deleted)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, int64(99), got.Errors[0].TodoID)
	assert.Equal(t, http.StatusNotFound, got.Errors[0].Status)
	assert.Empty(t, backend.status(1), "todo 1 still stored")
	assert.Empty(t, backend.status(2), "todo 2 still stored")
	assert.Zero(t, backend.unauthorized)
}
