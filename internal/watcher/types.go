package watcher

import "time"

// DefaultDebounce coalesces the write bursts editors and atomic renames produce.
const DefaultDebounce = 20 * time.Millisecond

// Options tunes the Watcher.
type Options struct {
	Debounce time.Duration
}
