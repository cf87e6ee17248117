package usecase

import (
	"errors"

	"delete-on-check/internal/checklist"
	"delete-on-check/internal/document"
	"delete-on-check/internal/model"
	"delete-on-check/internal/vault"
	"delete-on-check/internal/workspace"
)

func toDocument(doc model.Document, open bool) document.Document {
	return document.Document{
		Document: doc,
		Open:     open,
		Enabled:  checklist.IsEnabled(doc.Content),
		Stats:    checklist.GetStats(doc.Content),
	}
}

// domainErr maps store and workspace errors onto document errors, keeping the
// original as context.
func domainErr(err error) error {
	var target error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vault.ErrNotFound):
		target = document.ErrNotFound
	case errors.Is(err, vault.ErrInvalidPath),
		errors.Is(err, vault.ErrOutsideVault),
		errors.Is(err, vault.ErrNotADocument):
		target = document.ErrInvalidPath
	case errors.Is(err, workspace.ErrNotOpen):
		target = document.ErrNotOpen
	case errors.Is(err, workspace.ErrNoActiveDocument):
		target = document.ErrNoActiveDocument
	default:
		return err
	}
	return errors.Join(target, err)
}
