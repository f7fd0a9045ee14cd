package impl

import (
	"context"

	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
)

// requireActiveAccount rejects shop admins whose shop was deactivated and customers
// whose profile was deactivated. A customer without a profile yet is allowed through.
func requireActiveAccount(ctx context.Context, repos repository.RepositoryFactory, id entity.Identity) error {
	switch id.Role {
	case entity.RoleShopAdmin:
		shop, err := repos.ShopRepo().FindByAdminID(ctx, id.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrAccountInactive.WithDetails("no shop is linked to this account")
			}

			return errors.Wrap(err, "failed to find shop for account")
		}
		if shop.Status != entity.StatusActive {
			return domainerrors.ErrAccountInactive
		}
	case entity.RoleCustomer:
		customer, err := repos.CustomerRepo().FindByAuthID(ctx, id.SubjectID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find customer for account")
		}
		if customer.Status != entity.StatusActive {
			return domainerrors.ErrAccountInactive
		}
	}

	return nil
}
