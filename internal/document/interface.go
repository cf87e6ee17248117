package document

import "context"

// UseCase is the editing-host surface over the vault and its open buffers.
type UseCase interface {
	// Vault and buffers
	List(ctx context.Context) (ListOutput, error)
	Content(ctx context.Context, input PathInput) (DocumentOutput, error)

	// Buffer lifecycle
	Open(ctx context.Context, input PathInput) (DocumentOutput, error)
	Activate(ctx context.Context, input PathInput) (DocumentOutput, error)
	Close(ctx context.Context, input PathInput) error

	// Editing
	Edit(ctx context.Context, input EditInput) (DocumentOutput, error)
	SetContent(ctx context.Context, input SetContentInput) (DocumentOutput, error)
	Save(ctx context.Context, input PathInput) (DocumentOutput, error)

	// One-shot whole-vault rewrite
	Sweep(ctx context.Context, input SweepInput) (SweepOutput, error)
}
