package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Tags      []string
	IsPinned  bool
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
