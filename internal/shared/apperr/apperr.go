// Package apperr defines the application error kinds shared by every layer.
// Services attach a kind and a client-safe message to the failures they
// report; the HTTP boundary maps kinds onto status codes.
package apperr

import "errors"

// Kind classifies an error for the transport boundary.
type Kind int

const (
	// KindBadRequest marks malformed or invalid input.
	KindBadRequest Kind = iota + 1
	// KindUnauthorized marks missing or failed authentication.
	KindUnauthorized
	// KindConflict marks a uniqueness or state conflict.
	KindConflict
	// KindNotFound marks an absent resource. Resources owned by another
	// user are reported with this kind as well.
	KindNotFound
	// KindInternal marks unexpected failures. Details never reach clients.
	KindInternal
)

// Error is an error carrying a kind and a client-safe message.
// An optional wrapped cause is kept for logging only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message, followed by the wrapped cause if present.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error that keeps err as the cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err. Errors that carry no kind anywhere in
// their chain are classified as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of err, or a generic message
// for errors that carry none.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
