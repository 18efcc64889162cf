package http

import (
	"errors"
	"net/http"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/note/repository"
	pkgErrors "executive-assistant/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	errProjectNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyNote),
		errors.Is(err, repository.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, assistant.ErrProjectNotFound):
		return errProjectNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
