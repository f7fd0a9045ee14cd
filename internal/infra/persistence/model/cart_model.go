package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLineModel mirrors the 'cart_lines' table. (customer_id, cake_id) is unique,
// which backs the insert-or-increment upsert.
type CartLineModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_customer_cake"`
	CakeID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_customer_cake"`
	Quantity   int             `gorm:"not null;check:chk_cart_lines_quantity,quantity >= 1"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *CredentialModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Cake     *CakeModel       `gorm:"foreignKey:CakeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}

// BeforeCreate assigns the primary key.
func (m *CartLineModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}

// CartLineView is the cart line joined with the cake display columns.
type CartLineView struct {
	CartLineModel
	CakeName     string
	CakeImages   pq.StringArray `gorm:"type:text[]"`
	CurrentPrice decimal.Decimal
}
