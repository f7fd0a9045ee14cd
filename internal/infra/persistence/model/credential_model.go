package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialModel mirrors the 'credentials' table. Emails are stored lower-cased.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// BeforeCreate assigns the primary key.
func (m *CredentialModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}

// RevokedTokenModel mirrors the 'revoked_tokens' table keyed by the JWT id.
type RevokedTokenModel struct {
	TokenID   string    `gorm:"type:varchar(64);primaryKey"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
