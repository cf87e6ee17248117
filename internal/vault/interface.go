package vault

import "context"

// Store is whole-document persistence for the vault. Paths are slash-separated and
// relative to Root.
type Store interface {
	Read(ctx context.Context, path string) (string, error)
	// Write replaces the document in a single step.
	Write(ctx context.Context, path, content string) error
	// List returns every document path, sorted.
	List(ctx context.Context) ([]string, error)
	Root() string
	// Rel converts an absolute filesystem path into a document path.
	Rel(abs string) (string, error)
	// IsDocument reports whether path has the vault extension.
	IsDocument(path string) bool
}
