package editor

import "delete-on-check/internal/model"

// Buffer is the line-addressable text the editing host exposes for a document.
// Implementations always hold at least one line, possibly empty.
type Buffer interface {
	// Line returns the text of line i without its newline.
	Line(i int) string
	// LastLine returns the index of the final line.
	LastLine() int
	// ReplaceRange replaces the text between from and to with text.
	ReplaceRange(from, to model.Position, text string)
	// Value returns the full text joined by "\n".
	Value() string
}
