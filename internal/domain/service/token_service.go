package service

import (
	"time"

	"github.com/google/uuid"

	"cakehaven/internal/domain/entity"
)

// Token types carried in the typ claim.
const (
	TokenTypeAccess = "access"
	TokenTypeReset  = "reset"
)

// Claims is the verified content of a token.
type Claims struct {
	SubjectID uuid.UUID
	Role      entity.Role
	Type      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity converts access claims into the request identity.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		SubjectID: c.SubjectID,
		Role:      c.Role,
		TokenID:   c.TokenID,
		ExpiresAt: c.ExpiresAt,
	}
}

// IssuedToken is a freshly signed token with its id and expiry.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	// Issue creates an access token for the subject and role.
	Issue(subjectID uuid.UUID, role entity.Role) (*IssuedToken, error)

	// Verify validates an access token. Reset tokens are rejected.
	Verify(token string) (*Claims, error)

	// IssueReset creates a short-lived password reset token.
	IssueReset(subjectID uuid.UUID) (*IssuedToken, error)

	// VerifyReset validates a password reset token. Access tokens are rejected.
	VerifyReset(token string) (*Claims, error)

	// AccessTTL returns the lifetime of access tokens.
	AccessTTL() time.Duration
}
