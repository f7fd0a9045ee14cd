package repository

import (
	"context"
	"errors"
	"time"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCredentialNotFound is returned when no credential matches the lookup.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrCredentialExists is returned when the email is already registered.
	ErrCredentialExists = errors.New("credential already exists")
	// ErrTokenConsumed is returned when a single-use token id was already recorded.
	ErrTokenConsumed = errors.New("token already consumed")
)

// CredentialRepository persists authentication records.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error)
	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// RevokedTokenRepository keeps logged-out access token ids until they expire.
type RevokedTokenRepository interface {
	// Revoke is idempotent for the same token id.
	Revoke(ctx context.Context, token *entity.RevokedToken) error
	// Consume records a single-use token id and returns ErrTokenConsumed if it is already there.
	Consume(ctx context.Context, token *entity.RevokedToken) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// PurgeExpired deletes revocations whose token has expired before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
