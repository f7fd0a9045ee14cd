package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the profile of a customer credential; at most one per credential.
type Customer struct {
	ID        uuid.UUID
	AuthID    uuid.UUID
	FullName  string
	Email     string
	Phone     string
	Address   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
