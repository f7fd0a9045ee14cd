package usecase

import (
	"context"

	"github.com/google/uuid"

	"cakehaven/internal/domain/entity"
)

// OrderItemInput is one requested cake and quantity.
type OrderItemInput struct {
	CakeID   uuid.UUID
	Quantity int
}

// CreateOrderInput either lists items explicitly or checks out the cart.
type CreateOrderInput struct {
	Items    []OrderItemInput
	FromCart bool
}

// OrderQuery filters order listings.
type OrderQuery struct {
	ListQuery
	Status *entity.OrderStatus
}

// OrderUsecase defines checkout and order management.
type OrderUsecase interface {
	// CreateOrder inserts the order and all its lines atomically.
	CreateOrder(ctx context.Context, id entity.Identity, input CreateOrderInput) (*entity.Order, error)
	GetMyOrders(ctx context.Context, id entity.Identity, query OrderQuery) (*entity.Page[*entity.Order], error)
	GetOrder(ctx context.Context, id entity.Identity, orderID uuid.UUID) (*entity.Order, error)
	GetAllOrders(ctx context.Context, id entity.Identity, query OrderQuery) (*entity.Page[*entity.Order], error)
	// GetShopOrders lists orders containing at least one of the caller's cakes.
	GetShopOrders(ctx context.Context, id entity.Identity, query OrderQuery) (*entity.Page[*entity.Order], error)
	UpdateOrderStatus(ctx context.Context, id entity.Identity, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	CancelOrder(ctx context.Context, id entity.Identity, orderID uuid.UUID) (*entity.Order, error)
	// GetOrderQR renders the pickup QR code as PNG.
	GetOrderQR(ctx context.Context, id entity.Identity, orderID uuid.UUID) ([]byte, error)
}
