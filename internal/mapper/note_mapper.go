package mapper

import (
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	// updated_at stays NULL until the first edit, so a fresh note carries no
	// modification time.
	var updatedAt *time.Time
	if n.UpdatedAt != nil {
		t := *n.UpdatedAt
		updatedAt = &t
	}

	tags := []string(n.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		IsPinned:  n.IsPinned,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if n.UpdatedAt != nil {
		t := *n.UpdatedAt
		updatedAt = &t
	}

	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      datatypes.NewJSONSlice(n.Tags),
		IsPinned:  n.IsPinned,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
