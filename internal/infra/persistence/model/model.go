// Package model holds the GORM persistence models. Primary keys are generated
// in Go (UUIDv7) before insert, so no column relies on a database default.
package model

import (
	"github.com/google/uuid"
)

func newID(current uuid.UUID) (uuid.UUID, error) {
	if current != uuid.Nil {
		return current, nil
	}

	return uuid.NewV7()
}

// All lists every model in dependency order for migrations and code generation.
func All() []any {
	return []any{
		&CredentialModel{},
		&RevokedTokenModel{},
		&CustomerModel{},
		&EnquiryModel{},
		&ShopModel{},
		&CakeModel{},
		&CartLineModel{},
		&OrderModel{},
		&OrderLineModel{},
	}
}
