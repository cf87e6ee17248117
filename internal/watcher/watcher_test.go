package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"delete-on-check/internal/vault"
	"delete-on-check/internal/watcher"
)

type saved struct {
	path    string
	content string
}

type recorder struct {
	mu     sync.Mutex
	events []saved
}

func (r *recorder) record(ctx context.Context, path, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, saved{path, content})
}

func (r *recorder) snapshot() []saved {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]saved(nil), r.events...)
}

func (r *recorder) last(path string) (string, bool) {
	for _, e := range reverse(r.snapshot()) {
		if e.path == path {
			return e.content, true
		}
	}
	return "", false
}

func reverse(in []saved) []saved {
	out := make([]saved, len(in))
	for i, e := range in {
		out[len(in)-1-i] = e
	}
	return out
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func run(t *testing.T) (*vault.FS, *recorder) {
	t.Helper()
	store, err := vault.NewFS(t.TempDir(), ".md")
	if err != nil {
		t.Fatal(err)
	}
	w, err := watcher.New(store, &mockLogger{}, watcher.Options{Debounce: 30 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := &recorder{}
	w.OnFileSaved(rec.record)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return store, rec
}

func TestWatcherReportsWrites(t *testing.T) {
	store, rec := run(t)
	ctx := context.Background()

	if err := store.Write(ctx, "a.md", "first"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "a.md", func() bool {
		c, ok := rec.last("a.md")
		return ok && c == "first"
	})

	// Plain in-place writes are reported too.
	if err := os.WriteFile(filepath.Join(store.Root(), "a.md"), []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "second write", func() bool {
		c, _ := rec.last("a.md")
		return c == "second"
	})
}

func TestWatcherCoalescesBursts(t *testing.T) {
	store, rec := run(t)
	full := filepath.Join(store.Root(), "burst.md")

	for i := 0; i < 10; i++ {
		os.WriteFile(full, []byte{byte('0' + i)}, 0o644)
	}
	waitFor(t, "burst", func() bool {
		c, _ := rec.last("burst.md")
		return c == "9"
	})
	if n := len(rec.snapshot()); n >= 10 {
		t.Errorf("expected coalesced notifications, got %d", n)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	store, rec := run(t)

	os.WriteFile(filepath.Join(store.Root(), "notes.txt"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(store.Root(), "sentinel.md"), []byte("s"), 0o644)

	waitFor(t, "sentinel", func() bool {
		_, ok := rec.last("sentinel.md")
		return ok
	})
	for _, e := range rec.snapshot() {
		if e.path != "sentinel.md" {
			t.Errorf("unexpected notification for %s", e.path)
		}
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	store, rec := run(t)

	dir := filepath.Join(store.Root(), "projects", "q3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "plan.md"), []byte("plan"), 0o644)

	waitFor(t, "nested file", func() bool {
		c, ok := rec.last("projects/q3/plan.md")
		return ok && c == "plan"
	})
}
