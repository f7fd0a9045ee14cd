package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cakehaven/internal/domain/entity"
)

// CreateCakeInput defines a new catalog item.
type CreateCakeInput struct {
	Name     string
	Price    decimal.Decimal
	Type     string
	Flavour  string
	Category string
	Size     string
	Servings int
	Images   []string
}

// UpdateCakeInput carries the cake fields to change.
type UpdateCakeInput struct {
	Name     *string
	Price    *decimal.Decimal
	Type     *string
	Flavour  *string
	Category *string
	Size     *string
	Servings *int
	Images   []string
}

// CakeQuery filters the catalog listing.
type CakeQuery struct {
	ListQuery
	Category string
	Type     string
	Flavour  string
	// Status is honored for shop admins listing their own catalog.
	Status *entity.Status
}

// UploadImageInput is an image file received from a shop admin.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CakeUsecase defines catalog operations.
type CakeUsecase interface {
	CreateCake(ctx context.Context, id entity.Identity, input CreateCakeInput) (*entity.Cake, error)
	UpdateCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID, input UpdateCakeInput) (*entity.Cake, error)
	ToggleCakeStatus(ctx context.Context, id entity.Identity, cakeID uuid.UUID) (*entity.Cake, error)
	DeleteCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID) error
	// GetAllCakes lists the caller's own catalog for shop admins and active cakes for everyone else.
	GetAllCakes(ctx context.Context, id entity.Identity, query CakeQuery) (*entity.Page[*entity.Cake], error)
	GetCake(ctx context.Context, id entity.Identity, cakeID uuid.UUID) (*entity.Cake, error)
	// UploadCakeImage stores the image and returns its durable URL.
	UploadCakeImage(ctx context.Context, id entity.Identity, input UploadImageInput) (string, error)
}
