package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/policy"
	"cakehaven/internal/domain/repository"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.ShopUsecase {
	return &shopService{
		repos:  repos,
		logger: logger,
	}
}

func (srv *shopService) GetAllShops(ctx context.Context, id entity.Identity, query usecase.ShopQuery) (*entity.Page[*entity.Shop], error) {
	if err := policy.Shop(id, policy.ActionList); err != nil {
		return nil, err
	}

	shops, total, err := srv.repos.ShopRepo().List(ctx, repository.ShopFilter{
		ListParams: query.Params(),
		Status:     query.Status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return usecase.NewPage(shops, total, query.ListQuery), nil
}

func (srv *shopService) GetShop(ctx context.Context, id entity.Identity, shopID uuid.UUID) (*entity.Shop, error) {
	if err := policy.Shop(id, policy.ActionRead); err != nil {
		return nil, err
	}

	return srv.find(ctx, shopID)
}

// ToggleShopStatus flips the shop between active and inactive. Shops are never hard deleted.
func (srv *shopService) ToggleShopStatus(ctx context.Context, id entity.Identity, shopID uuid.UUID) (*entity.Shop, error) {
	if err := policy.Shop(id, policy.ActionToggle); err != nil {
		return nil, err
	}

	shop, err := srv.find(ctx, shopID)
	if err != nil {
		return nil, err
	}

	next := shop.Status.Toggled()
	if err := srv.repos.ShopRepo().UpdateStatus(ctx, shop.ID, next); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle shop status")
	}
	shop.Status = next

	logs.FromContext(ctx, srv.logger).Info("Shop status toggled",
		slog.String("shop_id", shop.ID.String()),
		slog.String("status", string(shop.Status)))

	return shop, nil
}

func (srv *shopService) find(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.repos.ShopRepo().FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}
