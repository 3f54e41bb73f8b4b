package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an operator account: hall staff allowed to manage residents
// and events. Residents themselves do not log in.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the operator's login (unique).
	Email string

	DisplayName string

	// PasswordHash is the bcrypt hash of the operator's password.
	PasswordHash string

	CreatedAt int64
	UpdatedAt int64
}

// NewUser creates an operator with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
