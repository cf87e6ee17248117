package vault

import "errors"

var (
	ErrNotFound     = errors.New("document not found")
	ErrOutsideVault = errors.New("path is outside the vault")
	ErrInvalidPath  = errors.New("invalid document path")
	ErrNotADocument = errors.New("path is not a vault document")
)
