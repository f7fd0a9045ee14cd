package repository

import (
	"context"
	"errors"

	"cakehaven/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrCakeNotFound = errors.New("cake not found")

// CakeFilter narrows catalog listings.
type CakeFilter struct {
	ListParams
	OwnerID  *uuid.UUID
	Status   *entity.Status
	// ListedShopsOnly drops cakes whose shop is deactivated.
	ListedShopsOnly bool
	Category        string
	Type            string
	Flavour         string
}

// CakeRepository persists the catalog.
type CakeRepository interface {
	Create(ctx context.Context, cake *entity.Cake) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cake, error)
	// Update saves the editable fields of an active cake owned by ShopID.
	// It returns ErrCakeNotFound when no such row matches; ShopID is never written.
	Update(ctx context.Context, cake *entity.Cake) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter CakeFilter) ([]*entity.Cake, int64, error)
}
