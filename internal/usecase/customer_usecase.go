package usecase

import (
	"context"

	"github.com/google/uuid"

	"cakehaven/internal/domain/entity"
)

// CreateCustomerInput defines the profile fields of a new customer.
type CreateCustomerInput struct {
	FullName string
	Phone    string
	Address  string
}

// UpdateCustomerInput carries the profile fields to change.
type UpdateCustomerInput struct {
	FullName *string
	Phone    *string
	Address  *string
}

// CustomerUsecase defines customer profile operations.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, id entity.Identity, input CreateCustomerInput) (*entity.Customer, error)
	GetMyProfile(ctx context.Context, id entity.Identity) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id entity.Identity, customerID uuid.UUID) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id entity.Identity, customerID uuid.UUID, input UpdateCustomerInput) (*entity.Customer, error)
	ToggleCustomerStatus(ctx context.Context, id entity.Identity, customerID uuid.UUID) (*entity.Customer, error)
	GetAllCustomers(ctx context.Context, id entity.Identity, query ListQuery) (*entity.Page[*entity.Customer], error)
}
