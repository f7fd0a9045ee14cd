// Package policy decides whether an authenticated identity may act on a resource.
// Every function is pure: it never touches storage and returns nil or an AppError.
package policy

import (
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
)

// Action is an operation attempted on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionToggle Action = "toggle"
	ActionDelete Action = "delete"
	ActionDecide Action = "decide"
	ActionCancel Action = "cancel"
	ActionClear  Action = "clear"
)

// Cake authorizes catalog operations. A nil cake means the id did not resolve.
// Mutations by anyone but the owning shop admin are forbidden whether or not the cake exists.
func Cake(id entity.Identity, action Action, cake *entity.Cake) error {
	switch action {
	case ActionCreate:
		if !id.Is(entity.RoleShopAdmin) {
			return domainerrors.ErrForbidden
		}

		return nil
	case ActionList:
		return nil
	case ActionRead:
		if cake == nil {
			return domainerrors.ErrCakeNotFound
		}
		if cake.IsAvailable() || id.Is(entity.RoleSuperAdmin) || id.Owns(cake.ShopID) {
			return nil
		}

		return domainerrors.ErrCakeNotFound
	case ActionUpdate:
		if err := ownsCake(id, cake); err != nil {
			return err
		}
		if !cake.IsActive() {
			return domainerrors.ErrCakeInactive
		}

		return nil
	case ActionToggle, ActionDelete:
		return ownsCake(id, cake)
	default:
		return domainerrors.ErrForbidden
	}
}

func ownsCake(id entity.Identity, cake *entity.Cake) error {
	if !id.Is(entity.RoleShopAdmin) || cake == nil || !id.Owns(cake.ShopID) {
		return domainerrors.ErrCakeOwnershipViolation
	}

	return nil
}

// CustomerProfile authorizes profile operations. Creation is limited to the
// customer acting for itself; uniqueness is enforced by storage.
func CustomerProfile(id entity.Identity, action Action, profile *entity.Customer) error {
	switch action {
	case ActionCreate:
		if !id.Is(entity.RoleCustomer) {
			return domainerrors.ErrForbidden
		}

		return nil
	case ActionRead, ActionUpdate:
		if profile == nil {
			return domainerrors.ErrCustomerNotFound
		}
		if id.Role.IsAdmin() || id.Owns(profile.AuthID) {
			return nil
		}

		return domainerrors.ErrForbidden
	case ActionList, ActionToggle:
		if id.Role.IsAdmin() {
			return nil
		}

		return domainerrors.ErrForbidden
	default:
		return domainerrors.ErrForbidden
	}
}

// Shop authorizes shop operations. Shops are created only by enquiry approval.
func Shop(id entity.Identity, action Action) error {
	switch action {
	case ActionRead, ActionList, ActionToggle:
		if id.Is(entity.RoleSuperAdmin) {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

// Enquiry authorizes enquiry operations. Submission is public and never reaches here
// with an identity; the function still allows it for completeness.
func Enquiry(id entity.Identity, action Action) error {
	switch action {
	case ActionCreate:
		return nil
	case ActionRead, ActionList, ActionDecide:
		if id.Is(entity.RoleSuperAdmin) {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

// CartLine authorizes cart operations. Only the owning customer may touch a line.
func CartLine(id entity.Identity, action Action, line *entity.CartLine) error {
	if !id.Is(entity.RoleCustomer) {
		return domainerrors.ErrForbidden
	}

	switch action {
	case ActionCreate, ActionList, ActionClear:
		return nil
	case ActionRead, ActionUpdate, ActionDelete:
		if line == nil {
			return domainerrors.ErrCartLineNotFound
		}
		if !id.Owns(line.CustomerID) {
			return domainerrors.ErrForbidden
		}

		return nil
	default:
		return domainerrors.ErrForbidden
	}
}

// Order authorizes order operations.
func Order(id entity.Identity, action Action, order *entity.Order) error {
	switch action {
	case ActionCreate:
		if id.Is(entity.RoleCustomer) {
			return nil
		}

		return domainerrors.ErrForbidden
	case ActionList:
		return nil
	case ActionRead:
		if order == nil {
			return domainerrors.ErrOrderNotFound
		}
		if id.Is(entity.RoleSuperAdmin) || id.Owns(order.CustomerID) || sellsInto(id, order) {
			return nil
		}

		return domainerrors.ErrForbidden
	case ActionUpdate:
		if id.Is(entity.RoleSuperAdmin) {
			return nil
		}

		return domainerrors.ErrForbidden
	case ActionCancel:
		if order == nil {
			return domainerrors.ErrOrderNotFound
		}
		if id.Is(entity.RoleCustomer) && id.Owns(order.CustomerID) {
			return nil
		}

		return domainerrors.ErrForbidden
	default:
		return domainerrors.ErrForbidden
	}
}

// sellsInto reports whether a shop admin owns at least one cake in the order.
func sellsInto(id entity.Identity, order *entity.Order) bool {
	if !id.Is(entity.RoleShopAdmin) {
		return false
	}
	for _, line := range order.Items {
		if id.Owns(line.ShopID) {
			return true
		}
	}

	return false
}
