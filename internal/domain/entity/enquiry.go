package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryStatus is the decision state of a shop enquiry.
type EnquiryStatus string

const (
	EnquiryPending  EnquiryStatus = "pending"
	EnquiryApproved EnquiryStatus = "approved"
	EnquiryRejected EnquiryStatus = "rejected"
)

// IsValid checks if the EnquiryStatus is a valid value.
func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryPending, EnquiryApproved, EnquiryRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a decision has been made.
func (s EnquiryStatus) IsTerminal() bool {
	return s == EnquiryApproved || s == EnquiryRejected
}

// Enquiry is a public request to become a shop.
type Enquiry struct {
	ID uuid.UUID
	ShopDetails
	Status    EnquiryStatus
	Reason    *string
	DecidedBy *uuid.UUID
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnquiryDecision is the terminal transition applied to a pending enquiry.
type EnquiryDecision struct {
	Status    EnquiryStatus
	Reason    *string
	DecidedBy uuid.UUID
	DecidedAt time.Time
}
