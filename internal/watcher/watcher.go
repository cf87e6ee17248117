package watcher

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// OnFileSaved registers fn for every persisted change to a vault document.
func (w *Watcher) OnFileSaved(fn func(ctx context.Context, path, content string)) func() {
	w.subMu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.subMu.Unlock()

	return func() {
		w.subMu.Lock()
		delete(w.subs, id)
		w.subMu.Unlock()
	}
}

// Run forwards filesystem events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.l.Infof(ctx, "watcher: watching %s", w.store.Root())
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.l.Warnf(ctx, "watcher: %v", err)
		}
	}
}

// Close stops watching and drops pending notifications.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, t := range w.pending {
		t.Stop()
	}
	w.pending = map[string]*time.Timer{}
	w.mu.Unlock()

	return w.fsw.Close()
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	if ev.Has(fsnotify.Create) {
		if docs, err := w.addTree(ev.Name); err == nil && docs != nil {
			// Files may land in a new directory before it is watched.
			for _, d := range docs {
				w.schedule(ctx, d)
			}
			return
		}
	}

	if !w.store.IsDocument(ev.Name) {
		return
	}
	rel, err := w.store.Rel(ev.Name)
	if err != nil {
		return
	}
	w.schedule(ctx, rel)
}

// schedule (re)starts the debounce timer for path.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.pending[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.emit(context.WithoutCancel(ctx), path)
		}
	})
}

func (w *Watcher) emit(ctx context.Context, path string) {
	content, err := w.store.Read(ctx, path)
	if err != nil {
		w.l.Debugf(ctx, "watcher: skip %s: %v", path, err)
		return
	}

	w.subMu.RLock()
	fns := make([]func(ctx context.Context, path, content string), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.subMu.RUnlock()

	for _, fn := range fns {
		fn(ctx, path, content)
	}
}

// addTree watches dir and its sub-directories, skipping dot-directories, and
// returns the documents already inside. A non-directory returns nil, nil.
func (w *Watcher) addTree(dir string) ([]string, error) {
	var docs []string
	isDir := false
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if isDir && w.store.IsDocument(p) {
				if rel, err := w.store.Rel(p); err == nil {
					docs = append(docs, rel)
				}
			}
			return nil
		}
		if p != w.store.Root() && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		isDir = true
		return w.fsw.Add(p)
	})
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, nil
	}
	if docs == nil {
		docs = []string{}
	}
	return docs, nil
}
