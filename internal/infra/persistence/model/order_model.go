package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNo    string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status     string          `gorm:"type:varchar(10);not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time

	Customer *CredentialModel `gorm:"foreignKey:CustomerID"`
	Lines    []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}

// OrderLineModel mirrors the 'order_lines' table. Price is the snapshot at checkout.
// ShopID is copied from the cake so seller queries survive cake deletion.
type OrderLineModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CakeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CakeName string          `gorm:"type:varchar(100);not null"`
	ShopID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity int             `gorm:"not null;check:chk_order_lines_quantity,quantity >= 1"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// BeforeCreate assigns the primary key.
func (m *OrderLineModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}
