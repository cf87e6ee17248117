package dispatcher_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"delete-on-check/internal/editor"
	"delete-on-check/internal/vault"
)

type fakeHost struct {
	mu       sync.Mutex
	active   string
	noEditor bool
	buffers  map[string]*editor.TextBuffer
}

func newFakeHost() *fakeHost {
	return &fakeHost{buffers: map[string]*editor.TextBuffer{}}
}

func (h *fakeHost) open(path, text string, active bool) *editor.TextBuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	b := editor.NewBuffer(text)
	h.buffers[path] = b
	if active {
		h.active = path
	}
	return b
}

func (h *fakeHost) close(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.buffers, path)
	if h.active == path {
		h.active = ""
	}
}

func (h *fakeHost) ActiveDocumentPath() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active, h.active != ""
}

func (h *fakeHost) ActiveBuffer() (editor.Buffer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active == "" || h.noEditor {
		return nil, false
	}
	b, ok := h.buffers[h.active]
	return b, ok
}

func (h *fakeHost) Buffer(path string) (editor.Buffer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.buffers[path]
	if !ok {
		return nil, false
	}
	return b, true
}

type fakeNotifier struct {
	mu     sync.Mutex
	saved  func(ctx context.Context, path, content string)
	edited func(ctx context.Context, path string)
}

func (n *fakeNotifier) OnFileSaved(fn func(ctx context.Context, path, content string)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.saved = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.saved = nil
	}
}

func (n *fakeNotifier) OnBufferEdited(fn func(ctx context.Context, path string)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.edited = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.edited = nil
	}
}

func (n *fakeNotifier) fireSaved(path, content string) {
	n.mu.Lock()
	fn := n.saved
	n.mu.Unlock()
	if fn != nil {
		fn(context.Background(), path, content)
	}
}

func (n *fakeNotifier) fireEdited(path string) {
	n.mu.Lock()
	fn := n.edited
	n.mu.Unlock()
	if fn != nil {
		fn(context.Background(), path)
	}
}

func (n *fakeNotifier) subscribed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.saved != nil && n.edited != nil
}

type rewriteCall struct {
	path    string
	content string
}

type fakeFiles struct {
	mu    sync.Mutex
	calls []rewriteCall
	err   error
}

func (f *fakeFiles) Rewrite(ctx context.Context, path, content string) (vault.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, rewriteCall{path: path, content: content})
	return vault.Result{Path: path}, f.err
}

func (f *fakeFiles) calledWith() []rewriteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]rewriteCall(nil), f.calls...)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
