package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the sanitized account projection; the credential hash
// never leaves the service layer.
type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}
