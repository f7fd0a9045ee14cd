package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopDetails are the business fields an enquiry carries and an approved shop copies.
type ShopDetails struct {
	ShopName  string
	OwnerName string
	Email     string
	Phone     string
	Address   string
	City      string
}

// Shop is an approved seller. It only comes into existence through enquiry approval.
type Shop struct {
	ID uuid.UUID
	ShopDetails
	Status    Status
	EnquiryID uuid.UUID
	// AdminID links the shop_admin credential registered with the shop email, if any.
	AdminID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
