package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
)

func identity(role entity.Role) entity.Identity {
	return entity.Identity{SubjectID: uuid.New(), Role: role}
}

func TestCake(t *testing.T) {
	owner := identity(entity.RoleShopAdmin)
	otherShop := identity(entity.RoleShopAdmin)
	customer := identity(entity.RoleCustomer)
	superAdmin := identity(entity.RoleSuperAdmin)

	active := &entity.Cake{ID: uuid.New(), ShopID: owner.SubjectID, Status: entity.StatusActive}
	inactive := &entity.Cake{ID: uuid.New(), ShopID: owner.SubjectID, Status: entity.StatusInactive}
	suspended := &entity.Cake{ID: uuid.New(), ShopID: owner.SubjectID, Status: entity.StatusActive, ShopSuspended: true}

	tests := []struct {
		name    string
		id      entity.Identity
		action  Action
		cake    *entity.Cake
		wantErr error
	}{
		{"shop admin creates", owner, ActionCreate, nil, nil},
		{"customer cannot create", customer, ActionCreate, nil, domainerrors.ErrForbidden},
		{"super admin cannot create", superAdmin, ActionCreate, nil, domainerrors.ErrForbidden},
		{"anyone lists", customer, ActionList, nil, nil},
		{"customer reads active", customer, ActionRead, active, nil},
		{"customer cannot see inactive", customer, ActionRead, inactive, domainerrors.ErrCakeNotFound},
		{"owner reads inactive", owner, ActionRead, inactive, nil},
		{"super admin reads inactive", superAdmin, ActionRead, inactive, nil},
		{"customer cannot see cake of suspended shop", customer, ActionRead, suspended, domainerrors.ErrCakeNotFound},
		{"owner reads cake of suspended shop", owner, ActionRead, suspended, nil},
		{"read missing", owner, ActionRead, nil, domainerrors.ErrCakeNotFound},
		{"owner edits active", owner, ActionUpdate, active, nil},
		{"owner cannot edit inactive", owner, ActionUpdate, inactive, domainerrors.ErrCakeInactive},
		{"other shop cannot edit", otherShop, ActionUpdate, active, domainerrors.ErrCakeOwnershipViolation},
		{"other shop editing inactive is still forbidden", otherShop, ActionUpdate, inactive, domainerrors.ErrCakeOwnershipViolation},
		{"edit missing is forbidden", otherShop, ActionUpdate, nil, domainerrors.ErrCakeOwnershipViolation},
		{"owner toggles inactive", owner, ActionToggle, inactive, nil},
		{"other shop cannot toggle", otherShop, ActionToggle, active, domainerrors.ErrCakeOwnershipViolation},
		{"toggle missing is forbidden", owner, ActionToggle, nil, domainerrors.ErrCakeOwnershipViolation},
		{"owner deletes", owner, ActionDelete, active, nil},
		{"customer cannot delete", customer, ActionDelete, active, domainerrors.ErrCakeOwnershipViolation},
		{"super admin cannot delete", superAdmin, ActionDelete, active, domainerrors.ErrCakeOwnershipViolation},
		{"delete missing is forbidden", otherShop, ActionDelete, nil, domainerrors.ErrCakeOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Cake(tt.id, tt.action, tt.cake)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCustomerProfile(t *testing.T) {
	self := identity(entity.RoleCustomer)
	other := identity(entity.RoleCustomer)
	shopAdmin := identity(entity.RoleShopAdmin)
	superAdmin := identity(entity.RoleSuperAdmin)
	profile := &entity.Customer{ID: uuid.New(), AuthID: self.SubjectID}

	tests := []struct {
		name    string
		id      entity.Identity
		action  Action
		profile *entity.Customer
		wantErr error
	}{
		{"customer creates", self, ActionCreate, nil, nil},
		{"shop admin cannot create", shopAdmin, ActionCreate, nil, domainerrors.ErrForbidden},
		{"self reads", self, ActionRead, profile, nil},
		{"other customer cannot read", other, ActionRead, profile, domainerrors.ErrForbidden},
		{"shop admin reads", shopAdmin, ActionRead, profile, nil},
		{"super admin updates", superAdmin, ActionUpdate, profile, nil},
		{"other customer cannot update", other, ActionUpdate, profile, domainerrors.ErrForbidden},
		{"read missing", self, ActionRead, nil, domainerrors.ErrCustomerNotFound},
		{"customer cannot toggle", self, ActionToggle, profile, domainerrors.ErrForbidden},
		{"admin toggles", shopAdmin, ActionToggle, profile, nil},
		{"customer cannot list", self, ActionList, nil, domainerrors.ErrForbidden},
		{"delete is never allowed", superAdmin, ActionDelete, profile, domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CustomerProfile(tt.id, tt.action, tt.profile)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShopAndEnquiry(t *testing.T) {
	superAdmin := identity(entity.RoleSuperAdmin)
	shopAdmin := identity(entity.RoleShopAdmin)
	customer := identity(entity.RoleCustomer)

	assert.NoError(t, Shop(superAdmin, ActionToggle))
	assert.NoError(t, Shop(superAdmin, ActionList))
	assert.ErrorIs(t, Shop(shopAdmin, ActionRead), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Shop(superAdmin, ActionCreate), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Shop(superAdmin, ActionDelete), domainerrors.ErrForbidden)

	assert.NoError(t, Enquiry(entity.Identity{}, ActionCreate))
	assert.NoError(t, Enquiry(superAdmin, ActionDecide))
	assert.ErrorIs(t, Enquiry(shopAdmin, ActionDecide), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Enquiry(customer, ActionList), domainerrors.ErrForbidden)
}

func TestCartLine(t *testing.T) {
	owner := identity(entity.RoleCustomer)
	other := identity(entity.RoleCustomer)
	shopAdmin := identity(entity.RoleShopAdmin)
	line := &entity.CartLine{ID: uuid.New(), CustomerID: owner.SubjectID, Quantity: 1}

	assert.NoError(t, CartLine(owner, ActionCreate, nil))
	assert.NoError(t, CartLine(owner, ActionList, nil))
	assert.NoError(t, CartLine(owner, ActionClear, nil))
	assert.NoError(t, CartLine(owner, ActionUpdate, line))
	assert.NoError(t, CartLine(owner, ActionDelete, line))

	assert.ErrorIs(t, CartLine(other, ActionUpdate, line), domainerrors.ErrForbidden)
	assert.ErrorIs(t, CartLine(other, ActionDelete, line), domainerrors.ErrForbidden)
	assert.ErrorIs(t, CartLine(owner, ActionDelete, nil), domainerrors.ErrCartLineNotFound)
	assert.ErrorIs(t, CartLine(shopAdmin, ActionCreate, nil), domainerrors.ErrForbidden)
}

func TestOrder(t *testing.T) {
	owner := identity(entity.RoleCustomer)
	other := identity(entity.RoleCustomer)
	seller := identity(entity.RoleShopAdmin)
	otherSeller := identity(entity.RoleShopAdmin)
	superAdmin := identity(entity.RoleSuperAdmin)

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: owner.SubjectID,
		Status:     entity.OrderPending,
		Items:      []*entity.OrderLine{{CakeID: uuid.New(), ShopID: seller.SubjectID, Quantity: 1}},
	}

	assert.NoError(t, Order(owner, ActionCreate, nil))
	assert.ErrorIs(t, Order(seller, ActionCreate, nil), domainerrors.ErrForbidden)

	assert.NoError(t, Order(owner, ActionRead, order))
	assert.NoError(t, Order(superAdmin, ActionRead, order))
	assert.NoError(t, Order(seller, ActionRead, order))
	assert.ErrorIs(t, Order(otherSeller, ActionRead, order), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Order(other, ActionRead, order), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Order(owner, ActionRead, nil), domainerrors.ErrOrderNotFound)

	assert.NoError(t, Order(superAdmin, ActionUpdate, order))
	assert.ErrorIs(t, Order(seller, ActionUpdate, order), domainerrors.ErrForbidden)

	assert.NoError(t, Order(owner, ActionCancel, order))
	assert.ErrorIs(t, Order(other, ActionCancel, order), domainerrors.ErrForbidden)
	assert.ErrorIs(t, Order(superAdmin, ActionCancel, order), domainerrors.ErrForbidden)
}
