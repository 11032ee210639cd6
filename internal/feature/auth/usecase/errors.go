// Package usecase implements the business logic for the auth feature.
package usecase

import "notes_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "user not found")

	// ErrUsernameTaken is returned when attempting to register a username that is already in use.
	ErrUsernameTaken = apperr.New(apperr.KindConflict, "username already taken")

	// ErrInvalidCredentials is returned when login fails, without revealing
	// whether the username or the password was wrong.
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "invalid credentials")
)
