// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a credential carries.
type Role string

const (
	// RoleCustomer browses cakes, keeps a cart and places orders.
	RoleCustomer Role = "customer"
	// RoleShopAdmin manages the catalog of one shop.
	RoleShopAdmin Role = "shop_admin"
	// RoleSuperAdmin reviews enquiries and manages shops.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role is one of the administrative roles.
func (r Role) IsAdmin() bool {
	return r == RoleShopAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
