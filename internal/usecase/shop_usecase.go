package usecase

import (
	"context"

	"github.com/google/uuid"

	"cakehaven/internal/domain/entity"
)

// ShopQuery filters the shop listing.
type ShopQuery struct {
	ListQuery
	Status *entity.Status
}

// ShopUsecase defines shop management operations. Shops are created by enquiry approval only.
type ShopUsecase interface {
	GetAllShops(ctx context.Context, id entity.Identity, query ShopQuery) (*entity.Page[*entity.Shop], error)
	GetShop(ctx context.Context, id entity.Identity, shopID uuid.UUID) (*entity.Shop, error)
	ToggleShopStatus(ctx context.Context, id entity.Identity, shopID uuid.UUID) (*entity.Shop, error)
}
