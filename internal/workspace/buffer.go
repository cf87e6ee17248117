package workspace

import (
	"context"

	"delete-on-check/internal/editor"
	"delete-on-check/internal/model"
)

// trackedBuffer is what the workspace hands out: edits through it notify
// buffer-edited subscribers, the same as edits made through the API.
type trackedBuffer struct {
	*editor.TextBuffer
	path string
	ws   *Workspace
}

// ReplaceRange serves edits made by buffer holders such as the dispatcher, which
// carry no request context.
func (b trackedBuffer) ReplaceRange(from, to model.Position, text string) {
	b.replaceRange(context.Background(), from, to, text)
}

func (b trackedBuffer) replaceRange(ctx context.Context, from, to model.Position, text string) {
	b.TextBuffer.ReplaceRange(from, to, text)
	b.ws.notifyEdited(ctx, b.path)
}

// OnBufferEdited registers fn for every buffer edit. Subscribers run synchronously
// on the editing goroutine and must not block.
func (w *Workspace) OnBufferEdited(fn func(ctx context.Context, path string)) func() {
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

func (w *Workspace) notifyEdited(ctx context.Context, path string) {
	w.subMu.RLock()
	fns := make([]func(ctx context.Context, path string), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.subMu.RUnlock()

	for _, fn := range fns {
		fn(ctx, path)
	}
}
