package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller produced by the auth guard.
// SubjectID is always the Credential ID.
type Identity struct {
	SubjectID uuid.UUID
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// Is reports whether the identity carries the given role.
func (i Identity) Is(role Role) bool {
	return i.Role == role
}

// Owns reports whether the identity is the given owner.
func (i Identity) Owns(ownerID uuid.UUID) bool {
	return ownerID != uuid.Nil && i.SubjectID == ownerID
}
