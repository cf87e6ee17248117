package http

import (
	"errors"
	"net/http"

	"delete-on-check/internal/document"
	pkgErrors "delete-on-check/pkg/errors"
)

var (
	errNotFound         = pkgErrors.NewHTTPError(http.StatusNotFound, "document not found")
	errNotOpen          = pkgErrors.NewHTTPError(http.StatusNotFound, "document is not open")
	errInvalidPath      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid document path")
	errNoActiveDocument = pkgErrors.NewHTTPError(http.StatusBadRequest, "no active document")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return errNotFound
	case errors.Is(err, document.ErrNotOpen):
		return errNotOpen
	case errors.Is(err, document.ErrInvalidPath):
		return errInvalidPath
	case errors.Is(err, document.ErrNoActiveDocument):
		return errNoActiveDocument
	default:
		return pkgErrors.ErrInternalServerError
	}
}
