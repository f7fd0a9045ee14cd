package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNoExists is returned when the generated order number collides.
	ErrOrderNoExists = errors.New("order number already exists")
	// ErrOrderStatusChanged is returned when the order is no longer in the expected status.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	ListParams
	CustomerID *uuid.UUID
	// ShopID keeps orders with at least one line of that shop admin's cakes.
	ShopID *uuid.UUID
	Status *entity.OrderStatus
}

// OrderRepository persists orders and their lines.
type OrderRepository interface {
	// Create inserts the header and every line. Call it inside a transaction.
	Create(ctx context.Context, order *entity.Order) error
	// FindByID returns the order with lines, cake names and customer email.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)
	// UpdateStatus changes the status only when the stored status equals from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
