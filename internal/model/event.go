package model

import "time"

// EventKind identifies which host signal produced an Event.
type EventKind string

const (
	EventFileSaved    EventKind = "file_saved"
	EventBufferEdited EventKind = "buffer_edited"
)

// Event is a single change notification handed to the dispatcher.
type Event struct {
	ID      string    // uuid, for log correlation only
	Kind    EventKind // file_saved or buffer_edited
	Path    string    // Vault-relative path of the affected document
	Content string    // Persisted content (file_saved only)
	At      time.Time // When the notification was received
}
