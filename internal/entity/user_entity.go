package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of chat history. Registration and login live outside this service.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
