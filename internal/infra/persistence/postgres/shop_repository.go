package postgres

import (
	"context"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var shopSortColumns = map[string]string{
	"name":       "shop_name",
	"city":       "city",
	"created_at": "created_at",
}

// shopRepository implements repository.ShopRepository using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a shop. A second shop for the same enquiry fails with ErrShopExists.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Omit("Enquiry").Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEnquiryNotFound
		}

		return executeError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its id.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindActiveByEmail returns the most recent active shop registered with the email.
func (repo *shopRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ? AND status = ?", normalizeEmail(email), entity.StatusActive).
		Order("created_at DESC").
		Take(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by email")
	}

	return toShopDomain(&shopM), nil
}

// FindByAdminID returns the shop linked to the shop_admin credential.
func (repo *shopRepository) FindByAdminID(ctx context.Context, adminID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("admin_id = ?", adminID).Take(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by admin")
	}

	return toShopDomain(&shopM), nil
}

// UpdateStatus sets the shop status.
func (repo *shopRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	return repo.updateColumn(ctx, id, "status", string(status))
}

// LinkAdmin records the shop_admin credential that manages the shop.
func (repo *shopRepository) LinkAdmin(ctx context.Context, shopID, adminID uuid.UUID) error {
	return repo.updateColumn(ctx, shopID, "admin_id", adminID)
}

func (repo *shopRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return executeError(result.Error, "failed to update shop "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// List returns a page of shops filtered by status and search term.
func (repo *shopRepository) List(ctx context.Context, filter repository.ShopFilter) ([]*entity.Shop, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ShopModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = searchAny(query, filter.Search, "shop_name", "owner_name", "email", "city").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shops")
	}

	var shopMs []*model.ShopModel
	if err := page(query, filter.ListParams, shopSortColumns, "created_at").Find(&shopMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, len(shopMs))
	for i, shopM := range shopMs {
		shops[i] = toShopDomain(shopM)
	}

	return shops, total, nil
}

func toShopDetails(data model.ShopFields) entity.ShopDetails {
	return entity.ShopDetails{
		ShopName:  data.ShopName,
		OwnerName: data.OwnerName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		City:      data.City,
	}
}

func fromShopDetails(data entity.ShopDetails) model.ShopFields {
	return model.ShopFields{
		ShopName:  data.ShopName,
		OwnerName: data.OwnerName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		City:      data.City,
	}
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:          data.ID,
		ShopDetails: toShopDetails(data.ShopFields),
		Status:      entity.Status(data.Status),
		EnquiryID:   data.EnquiryID,
		AdminID:     data.AdminID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:         data.ID,
		ShopFields: fromShopDetails(data.ShopDetails),
		Status:     string(data.Status),
		EnquiryID:  data.EnquiryID,
		AdminID:    data.AdminID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
