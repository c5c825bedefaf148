package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/todo-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), nil)
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_ConfiguredAddr(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func startServer(t *testing.T, handler http.Handler) (*adapthttp.Server, <-chan error) {
	t.Helper()

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case <-s.Ready():
	case err := <-errCh:
		t.Fatalf("Start() error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server never became ready")
	}
	return s, errCh
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	s, errCh := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	resp, err := http.Get("http://" + s.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want %q", body, "ok")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownDefaultTimeout(t *testing.T) {
	t.Parallel()

	s, errCh := startServer(t, http.NotFoundHandler())

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	s, errCh := startServer(t, http.NotFoundHandler())
	t.Cleanup(func() {
		_ = s.Shutdown(context.Background())
		<-errCh
	})

	host, port := splitAddr(t, s.Addr())
	clash := adapthttp.NewServer(config.ServerConfig{Host: host, Port: port}, http.NotFoundHandler(), discardLogger())
	if err := clash.Start(); err == nil {
		t.Fatal("Start() on a bound port succeeded, want error")
	}
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("SplitHostPort(%q) error = %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("port %q: %v", portStr, err)
	}
	return host, port
}
