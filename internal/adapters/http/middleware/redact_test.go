package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc")
	headers.Set("Cookie", "sid=1")
	headers.Set("X-Api-Key", "k")
	headers.Add("Accept-Language", "ja")
	headers.Add("Accept-Language", "en;q=0.5")

	got := map[string]string{}
	for _, a := range middleware.RedactHeaders(headers) {
		got[a.Key] = a.Value.String()
	}

	tests := map[string]string{
		"Authorization":   "[REDACTED]",
		"Cookie":          "[REDACTED]",
		"X-Api-Key":       "[REDACTED]",
		"Accept-Language": "ja,en;q=0.5",
	}
	for key, want := range tests {
		if got[key] != want {
			t.Errorf("%s = %q, want %q", key, got[key], want)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.RedactHeaders(http.Header{}); len(got) != 0 {
		t.Errorf("RedactHeaders(empty) = %v, want none", got)
	}
}
