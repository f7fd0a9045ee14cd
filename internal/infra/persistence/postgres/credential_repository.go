package postgres

import (
	"context"
	"time"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements repository.CredentialRepository using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a credential. The email is stored lower-cased.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)
	credentialM.Email = normalizeEmail(credentialM.Email)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialExists
		}

		return executeError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.Email = credentialM.Email
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindByID retrieves a credential by its id.
func (repo *credentialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by id")
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByEmail retrieves a credential by email, ignoring case and surrounding spaces.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Take(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// UpdatePassword replaces the stored hash.
func (repo *credentialRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return executeError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// revokedTokenRepository implements repository.RevokedTokenRepository using GORM.
type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository is the constructor for revokedTokenRepository.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// Revoke records the token id. Revoking the same id twice is a no-op.
func (repo *revokedTokenRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := &model.RevokedTokenModel{
		TokenID:   token.TokenID,
		SubjectID: token.SubjectID,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(tokenM).Error; err != nil {
		return executeError(err, "failed to revoke token")
	}
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Consume records a single-use token id. Concurrent consumers race on the primary
// key and only the first insert succeeds.
func (repo *revokedTokenRepository) Consume(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := &model.RevokedTokenModel{
		TokenID:   token.TokenID,
		SubjectID: token.SubjectID,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTokenConsumed
		}

		return executeError(err, "failed to consume token")
	}
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// IsRevoked reports whether the token id was logged out.
func (repo *revokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RevokedTokenModel{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}

	return count > 0, nil
}

// PurgeExpired removes revocations of tokens that have expired anyway.
func (repo *revokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.RevokedTokenModel{})
	if result.Error != nil {
		return 0, executeError(result.Error, "failed to purge revoked tokens")
	}

	return result.RowsAffected, nil
}
