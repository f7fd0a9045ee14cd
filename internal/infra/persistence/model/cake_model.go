package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CakeModel mirrors the 'cakes' table. ShopID is the owning shop admin's credential id.
type CakeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Type      string          `gorm:"type:varchar(50);not null;index"`
	Flavour   string          `gorm:"type:varchar(50);not null;index"`
	Category  string          `gorm:"type:varchar(50);not null;index"`
	Size      string          `gorm:"type:varchar(20);not null"`
	Servings  int             `gorm:"not null"`
	Images    pq.StringArray  `gorm:"type:text[]"`
	Status    string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Shop *CredentialModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (CakeModel) TableName() string {
	return "cakes"
}

// BeforeCreate assigns the primary key.
func (m *CakeModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}

// CakeView is a cake joined with the status of its shop.
type CakeView struct {
	CakeModel
	ShopSuspended bool
}
