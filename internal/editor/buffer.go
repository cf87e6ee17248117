package editor

import (
	"sync"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/model"
)

// TextBuffer is an in-memory Buffer safe for concurrent use. Each call is atomic;
// sequences of calls are not.
type TextBuffer struct {
	mu       sync.RWMutex
	lines    []string
	revision uint64
}

var _ Buffer = (*TextBuffer)(nil)

// NewBuffer returns a buffer holding text.
func NewBuffer(text string) *TextBuffer {
	return &TextBuffer{lines: checklist.Lines(text)}
}

func (b *TextBuffer) Line(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *TextBuffer) LastLine() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) - 1
}

func (b *TextBuffer) Value() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return checklist.Join(b.lines)
}

// Revision increases by one on every mutation.
func (b *TextBuffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// SetValue replaces the whole text.
func (b *TextBuffer) SetValue(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = checklist.Lines(text)
	b.revision++
}

// ReplaceRange clamps both positions into the buffer and swaps them if reversed.
func (b *TextBuffer) ReplaceRange(from, to model.Position, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	from = b.clamp(from)
	to = b.clamp(to)
	if to.Line < from.Line || (to.Line == from.Line && to.Ch < from.Ch) {
		from, to = to, from
	}

	head := b.lines[from.Line][:from.Ch]
	tail := b.lines[to.Line][to.Ch:]
	mid := checklist.Lines(head + text + tail)

	lines := make([]string, 0, len(b.lines)-(to.Line-from.Line)+len(mid)-1)
	lines = append(lines, b.lines[:from.Line]...)
	lines = append(lines, mid...)
	lines = append(lines, b.lines[to.Line+1:]...)

	b.lines = lines
	b.revision++
}

// clamp must be called with mu held.
func (b *TextBuffer) clamp(p model.Position) model.Position {
	last := len(b.lines) - 1
	switch {
	case p.Line < 0:
		return model.Position{}
	case p.Line > last:
		return model.Position{Line: last, Ch: len(b.lines[last])}
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if n := len(b.lines[p.Line]); p.Ch > n {
		p.Ch = n
	}
	return p
}
