// Package usecase implements the business logic for the notes feature.
package usecase

import "notes_backend/internal/shared/apperr"

var (
	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user. The two cases are indistinguishable on purpose.
	ErrNoteNotFound = apperr.New(apperr.KindNotFound, "note not found")

	// ErrEmptySearchTerm is returned when a search is attempted with a blank term.
	ErrEmptySearchTerm = apperr.New(apperr.KindBadRequest, "search term is required")
)
