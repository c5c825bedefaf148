package appctx

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/todo-gateway/internal/domain/todo"
)

// testAction records Execute and Rollback calls into a shared log.
type testAction struct {
	desc        string
	executeErr  error
	rollbackErr error
	executeFn   func(ctx context.Context) error
	rollbackFn  func(ctx context.Context)
	log         *actionLog
}

type actionLog struct {
	mu    sync.Mutex
	steps []string
}

func (l *actionLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steps = append(l.steps, s)
}

func (l *actionLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.steps)
}

func (a *testAction) Execute(ctx context.Context) error {
	if a.executeFn != nil {
		if err := a.executeFn(ctx); err != nil {
			return err
		}
	}
	if a.executeErr != nil {
		return a.executeErr
	}
	a.log.add("execute:" + a.desc)
	return nil
}

func (a *testAction) Rollback(ctx context.Context) error {
	if a.rollbackFn != nil {
		a.rollbackFn(ctx)
	}
	a.log.add("rollback:" + a.desc)
	return a.rollbackErr
}

func (a *testAction) Description() string { return a.desc }

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()

	rc := New()
	calls := 0
	fetch := func(_ context.Context) (todo.Todo, error) {
		calls++
		return todo.Todo{ID: 1, Name: "a"}, nil
	}

	for range 3 {
		got, err := GetOrFetch(context.Background(), rc, "todo:1", fetch)
		if err != nil {
			t.Fatalf("GetOrFetch() error = %v", err)
		}
		if got.Name != "a" {
			t.Fatalf("GetOrFetch() = %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()

	rc := New()
	calls := 0
	fetch := func(_ context.Context) (todo.Todo, error) {
		calls++
		return todo.Todo{}, errors.New("boom")
	}

	_, err1 := GetOrFetch(context.Background(), rc, "todo:9", fetch)
	_, err2 := GetOrFetch(context.Background(), rc, "todo:9", fetch)
	if err1 == nil || err2 == nil {
		t.Fatal("expected cached error on both calls")
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := New()
	rc.Put("todo:1", "not a todo")

	_, err := GetOrFetch(context.Background(), rc, "todo:1", func(_ context.Context) (todo.Todo, error) {
		t.Fatal("fetch should not run on a cache hit")
		return todo.Todo{}, nil
	})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_UsesCallerContext(t *testing.T) {
	t.Parallel()

	type tokenKey struct{}
	rc := New()
	ctx := context.WithValue(context.Background(), tokenKey{}, "secret")

	got, err := GetOrFetch(ctx, rc, "todo:1", func(ctx context.Context) (string, error) {
		tok, _ := ctx.Value(tokenKey{}).(string)
		return tok, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch() error = %v", err)
	}
	if got != "secret" {
		t.Errorf("fetch saw token %q, want the caller's", got)
	}
}

func TestPutAndForget(t *testing.T) {
	t.Parallel()

	rc := New()
	rc.Put("todo:1", todo.Todo{ID: 1, Name: "staged"})

	got, err := GetOrFetch(context.Background(), rc, "todo:1", func(_ context.Context) (todo.Todo, error) {
		return todo.Todo{ID: 1, Name: "fetched"}, nil
	})
	if err != nil || got.Name != "staged" {
		t.Fatalf("GetOrFetch() = %+v, %v; want staged value", got, err)
	}

	rc.Forget("todo:1")
	got, _ = GetOrFetch(context.Background(), rc, "todo:1", func(_ context.Context) (todo.Todo, error) {
		return todo.Todo{ID: 1, Name: "fetched"}, nil
	})
	if got.Name != "fetched" {
		t.Errorf("after Forget got %q, want fetched", got.Name)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	rc := New()
	ctx := WithRequestContext(context.Background(), rc)
	if FromContext(ctx) != rc {
		t.Error("FromContext() did not return the installed RequestContext")
	}
	if FromContext(context.Background()) == nil {
		t.Error("FromContext() without one installed returned nil")
	}
}

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()

	log := &actionLog{}
	rc := New()
	for _, d := range []string{"a", "b", "c"} {
		if err := rc.AddAction(&testAction{desc: d, log: log}); err != nil {
			t.Fatalf("AddAction(%s) error = %v", d, err)
		}
	}
	if rc.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", rc.Pending())
	}

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	want := []string{"execute:a", "execute:b", "execute:c"}
	if got := log.snapshot(); !slices.Equal(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestCommit_RollsBackInReverse(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	log := &actionLog{}
	rc := New()
	_ = rc.AddAction(&testAction{desc: "a", log: log})
	_ = rc.AddAction(&testAction{desc: "b", log: log, rollbackErr: errors.New("ignored")})
	_ = rc.AddAction(&testAction{desc: "c", log: log, executeErr: errBoom})
	_ = rc.AddAction(&testAction{desc: "d", log: log})

	err := rc.Commit(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("Commit() error = %v, want %v", err, errBoom)
	}

	want := []string{"execute:a", "execute:b", "rollback:b", "rollback:a"}
	if got := log.snapshot(); !slices.Equal(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestCommit_RollbackOutlivesCanceledRequest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rollbackErr error
	log := &actionLog{}
	rc := New()
	_ = rc.AddAction(&testAction{desc: "a", log: log, rollbackFn: func(ctx context.Context) {
		rollbackErr = ctx.Err()
	}})
	_ = rc.AddAction(&testAction{desc: "b", log: log, executeFn: func(ctx context.Context) error {
		cancel()
		return ctx.Err()
	}})

	if err := rc.Commit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Commit() error = %v, want context.Canceled", err)
	}
	if rollbackErr != nil {
		t.Errorf("rollback context error = %v, want nil", rollbackErr)
	}
	if got, want := log.snapshot(), []string{"execute:a", "rollback:a"}; !slices.Equal(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestCommit_OnlyOnce(t *testing.T) {
	t.Parallel()

	rc := New()
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("first Commit() error = %v", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("second Commit() = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.AddAction(&testAction{desc: "late", log: &actionLog{}}); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction after commit = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddAction_Nil(t *testing.T) {
	t.Parallel()

	rc := New()
	if err := rc.AddAction(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("AddAction(nil) = %v, want ErrNilAction", err)
	}
}
