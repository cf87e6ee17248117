package dispatcher

import (
	"errors"
	"sync"
	"time"

	pkgLog "delete-on-check/pkg/log"
)

// Dispatcher routes change notifications to the buffer or file mutator. All
// handling happens on one goroutine, so two plans never overlap.
type Dispatcher struct {
	host   Host
	files  FileRewriter
	editor BufferMutator
	l      pkgLog.Logger
	delay  time.Duration

	mu      sync.Mutex
	queue   []task
	wake    chan struct{}
	timers  map[*time.Timer]struct{}
	unsubs  []func()
	running bool
	stop    chan struct{}
	done    chan struct{}

	now func() time.Time
}

var (
	ErrAlreadyStarted = errors.New("dispatcher already started")
	ErrMissingDep     = errors.New("dispatcher: host, files, editor and logger are required")
)

// New creates a Dispatcher. It does nothing until Start.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Host == nil || cfg.Files == nil || cfg.Editor == nil || cfg.Logger == nil {
		return nil, ErrMissingDep
	}
	delay := cfg.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Dispatcher{
		host:   cfg.Host,
		files:  cfg.Files,
		editor: cfg.Editor,
		l:      cfg.Logger,
		delay:  delay,
		wake:   make(chan struct{}, 1),
		timers: map[*time.Timer]struct{}{},
		now:    time.Now,
	}, nil
}
