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

// cartService implements the CartUsecase interface.
type cartService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		repos:  repos,
		logger: logger,
	}
}

// AddToCart inserts the cake into the caller's cart or increments the existing
// line in a single upsert. The first-add price is kept on increments.
func (srv *cartService) AddToCart(ctx context.Context, id entity.Identity, input usecase.AddToCartInput) (*entity.CartLine, error) {
	if err := policy.CartLine(id, policy.ActionCreate, nil); err != nil {
		return nil, err
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	cake, err := srv.repos.CakeRepo().FindByID(ctx, input.CakeID)
	if err != nil {
		return nil, mapCakeError(err, "failed to find cake")
	}
	if !cake.IsAvailable() {
		return nil, domainerrors.ErrCakeInactive.WithDetails("inactive cakes cannot be added to the cart")
	}

	line, err := srv.repos.CartRepo().AddOrIncrement(ctx, &entity.CartLine{
		CustomerID: id.SubjectID,
		CakeID:     cake.ID,
		Quantity:   input.Quantity,
		Price:      cake.Price,
	})
	if err != nil {
		return nil, mapCakeError(err, "failed to add to cart")
	}

	logs.FromContext(ctx, srv.logger).Debug("Cart line upserted",
		slog.String("line_id", line.ID.String()),
		slog.Int("quantity", line.Quantity))

	return line, nil
}

func (srv *cartService) GetCart(ctx context.Context, id entity.Identity) (*usecase.CartOutput, error) {
	if err := policy.CartLine(id, policy.ActionList, nil); err != nil {
		return nil, err
	}

	lines, err := srv.repos.CartRepo().ListByCustomer(ctx, id.SubjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	output := &usecase.CartOutput{Items: lines}
	for _, line := range lines {
		output.Total = output.Total.Add(line.Subtotal())
	}

	return output, nil
}

func (srv *cartService) UpdateCartItem(ctx context.Context, id entity.Identity, lineID uuid.UUID, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	line, err := srv.authorizedLine(ctx, id, policy.ActionUpdate, lineID)
	if err != nil {
		return nil, err
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	if err := srv.repos.CartRepo().UpdateQuantity(ctx, line.ID, quantity); err != nil {
		return nil, mapCartError(err, "failed to update cart line")
	}
	line.Quantity = quantity

	return line, nil
}

func (srv *cartService) RemoveCartItem(ctx context.Context, id entity.Identity, lineID uuid.UUID) error {
	line, err := srv.authorizedLine(ctx, id, policy.ActionDelete, lineID)
	if err != nil {
		return err
	}

	if err := srv.repos.CartRepo().Delete(ctx, line.ID); err != nil {
		return mapCartError(err, "failed to remove cart line")
	}

	return nil
}

func (srv *cartService) ClearCart(ctx context.Context, id entity.Identity) error {
	if err := policy.CartLine(id, policy.ActionClear, nil); err != nil {
		return err
	}

	if err := srv.repos.CartRepo().DeleteByCustomer(ctx, id.SubjectID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) authorizedLine(ctx context.Context, id entity.Identity, action policy.Action, lineID uuid.UUID) (*entity.CartLine, error) {
	line, err := srv.repos.CartRepo().FindByID(ctx, lineID)
	if err != nil && !errors.Is(err, repository.ErrCartLineNotFound) {
		return nil, errors.Wrap(err, "failed to find cart line")
	}
	if err := policy.CartLine(id, action, line); err != nil {
		return nil, err
	}

	return line, nil
}

func mapCartError(err error, message string) error {
	if errors.Is(err, repository.ErrCartLineNotFound) {
		return domainerrors.ErrCartLineNotFound
	}

	return errors.Wrap(err, message)
}
