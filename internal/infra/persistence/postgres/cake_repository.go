package postgres

import (
	"context"
	"strings"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var cakeSortColumns = map[string]string{
	"name":       "cakes.name",
	"price":      "cakes.price",
	"created_at": "cakes.created_at",
}

// A cake whose admin has no linked shop row is treated as listed.
const cakeViewColumns = "cakes.*, COALESCE(shops.status = 'inactive', false) AS shop_suspended"

// cakeRepository implements repository.CakeRepository using GORM.
type cakeRepository struct {
	db *gorm.DB
}

// NewCakeRepository is the constructor for cakeRepository.
func NewCakeRepository(db *gorm.DB) repository.CakeRepository {
	return &cakeRepository{db: db}
}

// Create persists a new cake.
func (repo *cakeRepository) Create(ctx context.Context, cake *entity.Cake) error {
	cakeM := fromCakeDomain(cake)

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(cakeM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cake violates a column constraint")
		}

		return executeError(err, "failed to create cake")
	}

	cake.ID = cakeM.ID
	cake.CreatedAt = cakeM.CreatedAt
	cake.UpdatedAt = cakeM.UpdatedAt

	return nil
}

// FindByID retrieves a cake by its id along with its shop status.
func (repo *cakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error) {
	var view model.CakeView
	result := repo.viewQuery(ctx).Select(cakeViewColumns).Where("cakes.id = ?", id).Scan(&view)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find cake by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCakeNotFound
	}

	return toCakeDomain(&view), nil
}

// FindByIDs retrieves the cakes that exist among ids, in no particular order.
func (repo *cakeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cake, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var views []*model.CakeView
	if err := repo.viewQuery(ctx).Select(cakeViewColumns).Where("cakes.id IN ?", ids).Scan(&views).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cakes by ids")
	}

	return toCakeDomains(views), nil
}

// Update saves the editable fields. Owner and active status are part of the
// predicate, so a cake deactivated after it was read is left untouched.
func (repo *cakeRepository) Update(ctx context.Context, cake *entity.Cake) error {
	cakeM := fromCakeDomain(cake)

	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Where("id = ? AND shop_id = ? AND status = ?", cake.ID, cake.ShopID, string(entity.StatusActive)).
		Select("name", "price", "type", "flavour", "category", "size", "servings", "images", "updated_at").
		Updates(cakeM)
	if result.Error != nil {
		return executeError(result.Error, "failed to update cake")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}
	cake.UpdatedAt = cakeM.UpdatedAt

	return nil
}

// UpdateStatus sets the cake status.
func (repo *cakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return executeError(result.Error, "failed to update cake status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

// Delete removes a cake. Cart lines referencing it cascade; order lines keep their snapshot.
func (repo *cakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CakeModel{})
	if result.Error != nil {
		return executeError(result.Error, "failed to delete cake")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

// List returns a page of cakes. Category, type and flavour match case-insensitively.
func (repo *cakeRepository) List(ctx context.Context, filter repository.CakeFilter) ([]*entity.Cake, int64, error) {
	query := repo.viewQuery(ctx)
	if filter.OwnerID != nil {
		query = query.Where("cakes.shop_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("cakes.status = ?", string(*filter.Status))
	}
	if filter.ListedShopsOnly {
		query = query.Where("shops.status IS DISTINCT FROM ?", string(entity.StatusInactive))
	}
	for _, f := range []struct{ column, value string }{
		{"cakes.category", filter.Category},
		{"cakes.type", filter.Type},
		{"cakes.flavour", filter.Flavour},
	} {
		if value := strings.TrimSpace(f.value); value != "" {
			query = query.Where("LOWER("+f.column+") = ?", strings.ToLower(value))
		}
	}
	query = searchAny(query, filter.Search, "cakes.name", "cakes.flavour", "cakes.category").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cakes")
	}

	var views []*model.CakeView
	if err := page(query.Select(cakeViewColumns), filter.ListParams, cakeSortColumns, "cakes.created_at").Scan(&views).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cakes")
	}

	return toCakeDomains(views), total, nil
}

// viewQuery joins each cake with the shop its admin manages.
func (repo *cakeRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Joins("LEFT JOIN shops ON shops.admin_id = cakes.shop_id")
}

func toCakeDomains(views []*model.CakeView) []*entity.Cake {
	cakes := make([]*entity.Cake, len(views))
	for i, view := range views {
		cakes[i] = toCakeDomain(view)
	}

	return cakes
}

func toCakeDomain(data *model.CakeView) *entity.Cake {
	return &entity.Cake{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Type:      data.Type,
		Flavour:   data.Flavour,
		Category:  data.Category,
		Size:      data.Size,
		Servings:  data.Servings,
		Images:    []string(data.Images),
		Status:    entity.Status(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,

		ShopSuspended: data.ShopSuspended,
	}
}

func fromCakeDomain(data *entity.Cake) *model.CakeModel {
	images := pq.StringArray(data.Images)
	if images == nil {
		images = pq.StringArray{}
	}

	return &model.CakeModel{
		ID:        data.ID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Price:     data.Price,
		Type:      data.Type,
		Flavour:   data.Flavour,
		Category:  data.Category,
		Size:      data.Size,
		Servings:  data.Servings,
		Images:    images,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
