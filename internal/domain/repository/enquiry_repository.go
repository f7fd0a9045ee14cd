package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrEnquiryNotFound = errors.New("enquiry not found")
	// ErrEnquiryNotPending is returned by Decide when the enquiry is not pending anymore.
	ErrEnquiryNotPending = errors.New("enquiry is not pending")
)

// EnquiryFilter narrows enquiry listings.
type EnquiryFilter struct {
	ListParams
	Status *entity.EnquiryStatus
}

// EnquiryRepository persists shop enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error)
	// Decide moves a pending enquiry to the decision status in a single conditional update.
	// It returns ErrEnquiryNotPending when no pending row matched.
	Decide(ctx context.Context, id uuid.UUID, decision entity.EnquiryDecision) error
	List(ctx context.Context, filter EnquiryFilter) ([]*entity.Enquiry, int64, error)
}
