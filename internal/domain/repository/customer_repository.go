package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerExists is returned when the credential already has a profile.
	ErrCustomerExists = errors.New("customer profile already exists")
)

// CustomerRepository persists customer profiles.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, params ListParams) ([]*entity.Customer, int64, error)
}
