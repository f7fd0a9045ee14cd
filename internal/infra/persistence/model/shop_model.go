package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopFields are the business columns shared by enquiries and shops.
type ShopFields struct {
	ShopName  string `gorm:"type:varchar(100);not null"`
	OwnerName string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	Phone     string `gorm:"type:varchar(20);not null"`
	Address   string `gorm:"type:text;not null"`
	City      string `gorm:"type:varchar(100);not null"`
}

// EnquiryModel mirrors the 'enquiries' table.
type EnquiryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopFields ShopFields `gorm:"embedded"`
	Status     string     `gorm:"type:varchar(10);not null;index"`
	Reason     *string    `gorm:"type:text"`
	DecidedBy  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnquiryModel) TableName() string {
	return "enquiries"
}

// BeforeCreate assigns the primary key.
func (m *EnquiryModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}

// ShopModel mirrors the 'shops' table. EnquiryID is unique: an enquiry yields at most one shop.
type ShopModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopFields ShopFields `gorm:"embedded"`
	Status     string     `gorm:"type:varchar(10);not null;index"`
	EnquiryID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	AdminID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Enquiry *EnquiryModel `gorm:"foreignKey:EnquiryID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// BeforeCreate assigns the primary key.
func (m *ShopModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)
	return err
}
