package usecase

import (
	"context"
	"time"

	"delete-on-check/internal/model"
	"delete-on-check/internal/vault"
	"delete-on-check/pkg/log"
)

// Workspace is the set of open buffers the use case edits.
type Workspace interface {
	Open(ctx context.Context, path string) (model.Document, error)
	Activate(ctx context.Context, path string) (model.Document, error)
	Close(ctx context.Context, path string) error
	Edit(ctx context.Context, path string, from, to model.Position, text string) (model.Document, error)
	SetContent(ctx context.Context, path, text string) (model.Document, error)
	Save(ctx context.Context, path string) (model.Document, error)
	Document(path string) (model.Document, error)
	Documents() []model.Document
	ActiveDocument() (model.Document, error)
	ActiveDocumentPath() (string, bool)
}

// Sweeper rewrites every opted-in document of the vault.
type Sweeper interface {
	Sweep(ctx context.Context, opts vault.SweepOptions) ([]vault.Result, error)
}

// implUseCase is the private implementation of document.UseCase.
type implUseCase struct {
	ws      Workspace
	store   vault.Store
	sweeper Sweeper
	l       log.Logger
	now     func() time.Time
}

// New creates a new document UseCase implementation.
func New(ws Workspace, store vault.Store, sweeper Sweeper, l log.Logger) *implUseCase {
	return &implUseCase{
		ws:      ws,
		store:   store,
		sweeper: sweeper,
		l:       l,
		now:     time.Now,
	}
}
