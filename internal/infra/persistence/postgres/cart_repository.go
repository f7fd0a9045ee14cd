package postgres

import (
	"context"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const cartLineViewColumns = "cart_lines.*, cakes.name AS cake_name, cakes.images AS cake_images, cakes.price AS current_price"

// cartRepository implements repository.CartRepository using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// AddOrIncrement upserts on the (customer_id, cake_id) unique index. On conflict the
// stored quantity grows by the requested amount and the first-add price is kept.
func (repo *cartRepository) AddOrIncrement(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	lineM := fromCartLineDomain(line)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}, {Name: "cake_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(lineM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrCakeNotFound
		}
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}

		return nil, executeError(err, "failed to upsert cart line")
	}

	// The row id is the existing one when the insert turned into an update,
	// so read it back by the natural key from the primary.
	var view model.CartLineView
	result := repo.viewQuery(ctx).
		Clauses(dbresolver.Write).
		Where("cart_lines.customer_id = ? AND cart_lines.cake_id = ?", line.CustomerID, line.CakeID).
		Scan(&view)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to read cart line after upsert")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartLineNotFound
	}

	return toCartLineDomain(&view), nil
}

// FindByID retrieves a cart line joined with its cake.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	var view model.CartLineView
	result := repo.viewQuery(ctx).Where("cart_lines.id = ?", id).Scan(&view)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find cart line")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartLineNotFound
	}

	return toCartLineDomain(&view), nil
}

// ListByCustomer returns the customer's cart, oldest line first.
func (repo *cartRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartLine, error) {
	var views []*model.CartLineView
	if err := repo.viewQuery(ctx).
		Where("cart_lines.customer_id = ?", customerID).
		Order("cart_lines.created_at ASC").
		Scan(&views).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, len(views))
	for i, view := range views {
		lines[i] = toCartLineDomain(view)
	}

	return lines, nil
}

// UpdateQuantity overwrites the quantity of a line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}

		return executeError(result.Error, "failed to update cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Delete removes one line.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartLineModel{})
	if result.Error != nil {
		return executeError(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteByCustomer empties the customer's cart. An empty cart is not an error.
func (repo *cartRepository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return executeError(err, "failed to clear cart")
	}

	return nil
}

func (repo *cartRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Select(cartLineViewColumns).
		Joins("JOIN cakes ON cakes.id = cart_lines.cake_id")
}

func toCartLineDomain(data *model.CartLineView) *entity.CartLine {
	line := &entity.CartLine{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		CakeID:       data.CakeID,
		Quantity:     data.Quantity,
		Price:        data.Price,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		CakeName:     data.CakeName,
		CurrentPrice: data.CurrentPrice,
	}
	if len(data.CakeImages) > 0 {
		line.CakeImage = data.CakeImages[0]
	}

	return line
}

func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	return &model.CartLineModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		CakeID:     data.CakeID,
		Quantity:   data.Quantity,
		Price:      data.Price,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
