package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest carries partial fields. Blank strings and nil slices are
// treated as absent, so an update cannot clear title/content/tags; IsPinned
// is a pointer because false is a legitimate value to set.
type UpdateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

type SetPinnedRequest struct {
	IsPinned *bool `json:"isPinned" validate:"required"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	IsPinned  bool       `json:"isPinned"`
	UserId    uuid.UUID  `json:"userId"`
	CreatedOn time.Time  `json:"createdOn"`
	UpdatedOn *time.Time `json:"updatedOn,omitempty"`
}

// NoteActivityMessage is the decoded wire form of a note activity event.
type NoteActivityMessage struct {
	Type       string    `json:"type"`
	NoteId     uuid.UUID `json:"noteId"`
	UserId     uuid.UUID `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}
