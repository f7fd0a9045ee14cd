package postgres

import (
	"context"

	"cakehaven/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and constraint the models declare.
// The (customer_id, cake_id) unique index on cart_lines and the enquiry_id unique
// index on shops are created here.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
