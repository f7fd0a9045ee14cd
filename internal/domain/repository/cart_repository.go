package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository persists cart lines. Lines are unique per (customer, cake).
type CartRepository interface {
	// AddOrIncrement inserts the line or, when the customer already has the cake,
	// adds line.Quantity to the stored quantity in one statement. The stored price is kept.
	// It returns the resulting line joined with the cake display fields.
	AddOrIncrement(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error
}
