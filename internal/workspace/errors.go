package workspace

import "errors"

var (
	ErrNotOpen          = errors.New("document is not open")
	ErrNoActiveDocument = errors.New("no active document")
)
