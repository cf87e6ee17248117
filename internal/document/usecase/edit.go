package usecase

import (
	"context"

	"delete-on-check/internal/document"
)

func (uc *implUseCase) Edit(ctx context.Context, input document.EditInput) (document.DocumentOutput, error) {
	doc, err := uc.ws.Edit(ctx, input.Path, input.From, input.To, input.Text)
	if err != nil {
		return document.DocumentOutput{}, domainErr(err)
	}
	return document.DocumentOutput{Document: toDocument(doc, true)}, nil
}

func (uc *implUseCase) SetContent(ctx context.Context, input document.SetContentInput) (document.DocumentOutput, error) {
	doc, err := uc.ws.SetContent(ctx, input.Path, input.Content)
	if err != nil {
		return document.DocumentOutput{}, domainErr(err)
	}
	return document.DocumentOutput{Document: toDocument(doc, true)}, nil
}

func (uc *implUseCase) Save(ctx context.Context, input document.PathInput) (document.DocumentOutput, error) {
	doc, err := uc.ws.Save(ctx, input.Path)
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.Save: %s: %v", input.Path, err)
		return document.DocumentOutput{}, domainErr(err)
	}
	return document.DocumentOutput{Document: toDocument(doc, true)}, nil
}
