package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"delete-on-check/internal/vault"
	pkgLog "delete-on-check/pkg/log"
)

// Watcher reports persisted document changes under the vault root.
type Watcher struct {
	store    vault.Store
	l        pkgLog.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher

	subMu  sync.RWMutex
	subs   map[int]func(ctx context.Context, path, content string)
	nextID int

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// New watches the vault root and every directory below it.
func New(store vault.Store, l pkgLog.Logger, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher.New: %w", err)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		store:    store,
		l:        l,
		debounce: debounce,
		fsw:      fsw,
		subs:     map[int]func(ctx context.Context, path, content string){},
		pending:  map[string]*time.Timer{},
	}

	if _, err := w.addTree(store.Root()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watcher.New: %w", err)
	}
	return w, nil
}
