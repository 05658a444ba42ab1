package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a household member able to log in.
type User struct {
	ID           uuid.UUID
	Name         string // also used as the member's profile tag
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new household member.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
