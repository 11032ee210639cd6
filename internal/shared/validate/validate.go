// Package validate checks API input against the validation rules of each
// operation. Every violated rule is reported, so a single response tells
// the client everything that is wrong with its request.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"notes_backend/internal/shared/apperr"
)

// SignupInput carries the fields checked during registration.
// The username is expected to be trimmed before validation.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the fields checked during login. Only presence is
// enforced here; credential checking happens against the stored hash.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NoteCreateInput carries the fields checked when creating a note.
type NoteCreateInput struct {
	Title string `json:"title" validate:"required,min=1,max=50"`
	Text  string `json:"text" validate:"required,min=1,max=300"`
}

// NoteUpdateInput carries the fields checked when updating a note.
// Nil means the field was absent from the request; a present field must
// satisfy the same bounds as on creation, even when empty.
type NoteUpdateInput struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=50"`
	Text  *string `json:"text" validate:"omitempty,min=1,max=300"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	v.RegisterStructValidation(noteUpdateStructLevel, NoteUpdateInput{})

	return v
}

// noteUpdateStructLevel rejects updates that carry no fields at all.
func noteUpdateStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(NoteUpdateInput)
	if in.Title == nil && in.Text == nil {
		sl.ReportError(in.Title, "title", "Title", "noteupdate_fields", "")
	}
}

// Struct validates in against its declared rules and returns a single
// BadRequest error listing every violation, or nil when in is valid.
func Struct(in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable when in is not a struct.
		return apperr.Wrap(apperr.KindInternal, "validation failed", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return apperr.New(apperr.KindBadRequest, strings.Join(msgs, "; "))
}

// message translates a field error into the client-facing rule message.
func message(fe validator.FieldError) string {
	if fe.Tag() == "noteupdate_fields" {
		return "at least one of title or text must be provided"
	}

	switch fe.Field() {
	case "username":
		if fe.Tag() == "required" {
			return "username is required"
		}
		return "username must be between 3 and 50 characters"
	case "password":
		if fe.Tag() == "required" {
			return "password is required"
		}
		return "password must be at least 6 characters"
	case "title":
		if fe.Tag() == "required" {
			return "title is required"
		}
		return "title must be between 1 and 50 characters"
	case "text":
		if fe.Tag() == "required" {
			return "text is required"
		}
		return "text must be between 1 and 300 characters"
	}
	return fe.Field() + " is invalid"
}
