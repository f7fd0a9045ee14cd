package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel mirrors the 'customers' table. AuthID is unique so a credential has at most one profile.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Address   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credential *CredentialModel `gorm:"foreignKey:AuthID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// BeforeCreate assigns the primary key.
func (m *CustomerModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}
