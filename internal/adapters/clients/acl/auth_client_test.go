package acl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
	domauth "github.com/jsamuelsen11/todo-gateway/internal/domain/auth"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
)

func sessionBody() map[string]any {
	return map[string]any{
		"user":  map[string]any{"id": 7, "username": "alice", "email": "alice@example.com"},
		"token": "jwt-token",
	}
}

func TestAuthClient_Login(t *testing.T) {
	t.Parallel()

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body = readJSON(t, r)
		writeJSON(t, w, http.StatusOK, sessionBody())
	}))
	defer ts.Close()

	client := NewAuthClient(newTestClient(t, ts.URL))
	got, err := client.Login(context.Background(), domauth.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"username": "alice", "password": "pw"}, body)
	assert.Equal(t, &domauth.Session{
		User:  domauth.User{ID: 7, Username: "alice", Email: "alice@example.com"},
		Token: "jwt-token",
	}, got)
}

func TestAuthClient_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewAuthClient(newTestClient(t, ts.URL))
	_, err := client.Login(context.Background(), domauth.Credentials{Username: "alice", Password: "nope"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Login() error = %v, want ErrUnauthorized", err)
	}
}

func TestAuthClient_Register(t *testing.T) {
	t.Parallel()

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body = readJSON(t, r)
		writeJSON(t, w, http.StatusCreated, sessionBody())
	}))
	defer ts.Close()

	client := NewAuthClient(newTestClient(t, ts.URL))
	got, err := client.Register(context.Background(), domauth.Registration{
		Username: "alice", Email: "alice@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestAuthClient_Register_Conflict(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
			"status": 422,
			"type":   "validation_error",
			"errors": []any{map[string]any{"field": "username", "reason": "unique_violation"}},
		})
	}))
	defer ts.Close()

	client := NewAuthClient(newTestClient(t, ts.URL))
	_, err := client.Register(context.Background(), domauth.Registration{Username: "alice"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Errors[0].Field)
}

func TestAuthClient_LogoutAndCurrentUser_UseSessionToken(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.URL.Path] = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/auth/logout":
			w.WriteHeader(http.StatusNoContent)
		case "/auth/user":
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "username": "alice", "email": "a@example.com"})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	ctx := session.WithToken(context.Background(), "tok")
	client := NewAuthClient(newTestClient(t, ts.URL))

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, client.Logout(ctx))

	assert.Equal(t, map[string]string{
		"/auth/user":   "Bearer tok",
		"/auth/logout": "Bearer tok",
	}, seen)
}
