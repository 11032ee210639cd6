// Package entity defines the domain models for the notes feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a single note owned by a user.
type Note struct {
	ID        uuid.UUID // Unique identifier for the note
	OwnerID   uuid.UUID // ID of the user the note belongs to
	Title     string    // Short label, at most 50 characters
	Text      string    // Body content, at most 300 characters
	CreatedAt time.Time // Timestamp when the note was created
	UpdatedAt time.Time // Timestamp when the note was last modified
}

// NoteUpdate describes a partial modification of a note.
// A nil field leaves the stored value unchanged.
type NoteUpdate struct {
	Title *string
	Text  *string
}
