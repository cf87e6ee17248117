package dispatcher

import (
	"context"

	"delete-on-check/internal/editor"
	"delete-on-check/internal/vault"
)

// Host is the editing environment the dispatcher consults.
type Host interface {
	// ActiveDocumentPath returns the focused document, if any.
	ActiveDocumentPath() (string, bool)
	// ActiveBuffer returns the editable buffer of the active document.
	ActiveBuffer() (editor.Buffer, bool)
	// Buffer returns the buffer of an open document.
	Buffer(path string) (editor.Buffer, bool)
}

// FileSavedNotifier fires after a document's persisted content changes.
type FileSavedNotifier interface {
	OnFileSaved(fn func(ctx context.Context, path, content string)) (unsubscribe func())
}

// BufferEditedNotifier fires after any in-memory edit of an open buffer.
type BufferEditedNotifier interface {
	OnBufferEdited(fn func(ctx context.Context, path string)) (unsubscribe func())
}

// FileRewriter rewrites a background document without its checked tasks.
type FileRewriter interface {
	Rewrite(ctx context.Context, path, content string) (vault.Result, error)
}

// BufferMutator deletes checked tasks from a live buffer.
type BufferMutator interface {
	ApplyChecked(ctx context.Context, buf editor.Buffer) int
}
