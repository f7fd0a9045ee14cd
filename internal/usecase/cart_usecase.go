package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cakehaven/internal/domain/entity"
)

// AddToCartInput adds quantity of a cake to the caller's cart.
type AddToCartInput struct {
	CakeID   uuid.UUID
	Quantity int
}

// CartOutput is the caller's cart with its total at the snapshotted prices.
type CartOutput struct {
	Items []*entity.CartLine
	Total decimal.Decimal
}

// CartUsecase defines cart operations. Lines are addressed by their own id.
type CartUsecase interface {
	AddToCart(ctx context.Context, id entity.Identity, input AddToCartInput) (*entity.CartLine, error)
	GetCart(ctx context.Context, id entity.Identity) (*CartOutput, error)
	UpdateCartItem(ctx context.Context, id entity.Identity, lineID uuid.UUID, quantity int) (*entity.CartLine, error)
	RemoveCartItem(ctx context.Context, id entity.Identity, lineID uuid.UUID) error
	ClearCart(ctx context.Context, id entity.Identity) error
}
