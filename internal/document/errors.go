package document

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrNotOpen          = errors.New("document is not open")
	ErrInvalidPath      = errors.New("invalid document path")
	ErrNoActiveDocument = errors.New("no active document")
)
