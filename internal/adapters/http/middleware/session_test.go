package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/session"
)

func TestSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
	}{
		{name: "bearer", header: "Bearer abc", wantToken: "abc"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "basic ignored", header: "Basic dXNlcjpwdw=="},
		{name: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.Session()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, _ = session.Token(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.wantToken {
				t.Errorf("token = %q, want %q", got, tt.wantToken)
			}
		})
	}
}
