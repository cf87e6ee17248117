package workspace

import (
	"context"
	"sync"

	"delete-on-check/internal/editor"
	"delete-on-check/internal/vault"
	pkgLog "delete-on-check/pkg/log"
)

// Workspace is the editing host: it owns the open buffers and knows which one is
// active.
type Workspace struct {
	store vault.Store
	l     pkgLog.Logger

	mu     sync.RWMutex
	docs   map[string]*document
	active string

	subMu  sync.RWMutex
	subs   map[int]func(ctx context.Context, path string)
	nextID int
}

type document struct {
	path     string
	buf      *editor.TextBuffer
	savedRev uint64
}

func New(store vault.Store, l pkgLog.Logger) *Workspace {
	return &Workspace{
		store: store,
		l:     l,
		docs:  map[string]*document{},
		subs:  map[int]func(ctx context.Context, path string){},
	}
}
