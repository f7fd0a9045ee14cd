package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the authentication record: email, password hash and role.
// The role is fixed at signup.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RevokedToken marks an access token id as logged out until it would have expired anyway.
type RevokedToken struct {
	TokenID   string
	SubjectID uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}
