package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrShopNotFound = errors.New("shop not found")
	// ErrShopExists is returned when a shop was already created from the same enquiry.
	ErrShopExists = errors.New("shop already exists for enquiry")
)

// ShopFilter narrows shop listings.
type ShopFilter struct {
	ListParams
	Status *entity.Status
}

// ShopRepository persists approved shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	// FindActiveByEmail returns the active shop registered with the email.
	FindActiveByEmail(ctx context.Context, email string) (*entity.Shop, error)
	// FindByAdminID returns the shop managed by the shop_admin credential.
	FindByAdminID(ctx context.Context, adminID uuid.UUID) (*entity.Shop, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error
	LinkAdmin(ctx context.Context, shopID, adminID uuid.UUID) error
	List(ctx context.Context, filter ShopFilter) ([]*entity.Shop, int64, error)
}
