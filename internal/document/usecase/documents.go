package usecase

import (
	"context"

	"delete-on-check/internal/document"
	"delete-on-check/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) (document.ListOutput, error) {
	files, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.List: store.List: %v", err)
		return document.ListOutput{}, domainErr(err)
	}

	docs := uc.ws.Documents()
	open := make([]document.Document, len(docs))
	for i, d := range docs {
		open[i] = toDocument(d, true)
	}

	active, _ := uc.ws.ActiveDocumentPath()
	if files == nil {
		files = []string{}
	}
	return document.ListOutput{Files: files, Open: open, Active: active}, nil
}

// Content returns the open buffer for the path, or the persisted file when no
// buffer exists. An empty path means the active document.
func (uc *implUseCase) Content(ctx context.Context, input document.PathInput) (document.DocumentOutput, error) {
	path := input.Path
	if path == "" {
		doc, err := uc.ws.ActiveDocument()
		if err != nil {
			return document.DocumentOutput{}, domainErr(err)
		}
		return document.DocumentOutput{Document: toDocument(doc, true)}, nil
	}

	if doc, err := uc.ws.Document(path); err == nil {
		return document.DocumentOutput{Document: toDocument(doc, true)}, nil
	}

	content, err := uc.store.Read(ctx, path)
	if err != nil {
		return document.DocumentOutput{}, domainErr(err)
	}
	doc := model.Document{Path: path, Content: content}
	return document.DocumentOutput{Document: toDocument(doc, false)}, nil
}

func (uc *implUseCase) Open(ctx context.Context, input document.PathInput) (document.DocumentOutput, error) {
	doc, err := uc.ws.Open(ctx, input.Path)
	if err != nil {
		return document.DocumentOutput{}, domainErr(err)
	}
	return document.DocumentOutput{Document: toDocument(doc, true)}, nil
}

func (uc *implUseCase) Activate(ctx context.Context, input document.PathInput) (document.DocumentOutput, error) {
	doc, err := uc.ws.Activate(ctx, input.Path)
	if err != nil {
		return document.DocumentOutput{}, domainErr(err)
	}
	return document.DocumentOutput{Document: toDocument(doc, true)}, nil
}

func (uc *implUseCase) Close(ctx context.Context, input document.PathInput) error {
	return domainErr(uc.ws.Close(ctx, input.Path))
}
