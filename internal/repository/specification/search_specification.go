package specification

import (
	"strings"

	"gorm.io/gorm"
)

// NoteSearchQuery filters notes whose title or content contains the query.
// ILIKE gives case-insensitive substring matching on Postgres.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Query)
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps the query in wildcards, escaping ILIKE metacharacters so
// the user's text only ever matches literally.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
