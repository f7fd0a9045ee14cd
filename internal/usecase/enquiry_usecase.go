package usecase

import (
	"context"

	"github.com/google/uuid"

	"cakehaven/internal/domain/entity"
)

// EnquiryQuery filters the enquiry listing.
type EnquiryQuery struct {
	ListQuery
	Status *entity.EnquiryStatus
}

// ApproveEnquiryOutput returns the decided enquiry and the shop created from it.
type ApproveEnquiryOutput struct {
	Enquiry *entity.Enquiry
	Shop    *entity.Shop
}

// EnquiryUsecase defines the enquiry review workflow.
type EnquiryUsecase interface {
	CreateEnquiry(ctx context.Context, input entity.ShopDetails) (*entity.Enquiry, error)
	GetEnquiries(ctx context.Context, id entity.Identity, query EnquiryQuery) (*entity.Page[*entity.Enquiry], error)
	GetEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID) (*entity.Enquiry, error)
	// ApproveEnquiry marks the enquiry approved and creates its shop in one transaction.
	ApproveEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID) (*ApproveEnquiryOutput, error)
	RejectEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID, reason *string) (*entity.Enquiry, error)
}
