package dispatcher

import (
	"context"
	"time"

	"delete-on-check/internal/model"
	pkgLog "delete-on-check/pkg/log"
)

// DefaultDelay lets a checkbox toggle finish mutating the buffer before the rescan.
// Only the rescan of current content matters for correctness, not this value.
const DefaultDelay = 50 * time.Millisecond

// Config is the dependency bag passed to New().
type Config struct {
	Host   Host
	Files  FileRewriter
	Editor BufferMutator
	Logger pkgLog.Logger
	Delay  time.Duration
}

type taskKind int

const (
	taskFileSaved taskKind = iota
	taskBufferEdited
	taskDeferredCheck
)

type task struct {
	kind taskKind
	ctx  context.Context
	ev   model.Event
}
