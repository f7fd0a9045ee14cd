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

var enquirySortColumns = map[string]string{
	"name":       "shop_name",
	"city":       "city",
	"created_at": "created_at",
}

// enquiryRepository implements repository.EnquiryRepository using GORM.
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository is the constructor for enquiryRepository.
func NewEnquiryRepository(db *gorm.DB) repository.EnquiryRepository {
	return &enquiryRepository{db: db}
}

// Create persists a new enquiry.
func (repo *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiryM := fromEnquiryDomain(enquiry)

	if err := repo.db.WithContext(ctx).Create(enquiryM).Error; err != nil {
		return executeError(err, "failed to create enquiry")
	}

	enquiry.ID = enquiryM.ID
	enquiry.CreatedAt = enquiryM.CreatedAt
	enquiry.UpdatedAt = enquiryM.UpdatedAt

	return nil
}

// FindByID retrieves an enquiry by its id.
func (repo *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	var enquiryM model.EnquiryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&enquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find enquiry by id")
	}

	return toEnquiryDomain(&enquiryM), nil
}

// Decide applies the decision only while the enquiry is still pending. The status
// predicate in the UPDATE makes concurrent decisions race-free: exactly one wins.
func (repo *enquiryRepository) Decide(ctx context.Context, id uuid.UUID, decision entity.EnquiryDecision) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnquiryModel{}).
		Where("id = ? AND status = ?", id, string(entity.EnquiryPending)).
		Updates(map[string]any{
			"status":     string(decision.Status),
			"reason":     decision.Reason,
			"decided_by": decision.DecidedBy,
			"decided_at": decision.DecidedAt,
		})
	if result.Error != nil {
		return executeError(result.Error, "failed to decide enquiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnquiryNotPending
	}

	return nil
}

// List returns a page of enquiries filtered by status and search term.
func (repo *enquiryRepository) List(ctx context.Context, filter repository.EnquiryFilter) ([]*entity.Enquiry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EnquiryModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = searchAny(query, filter.Search, "shop_name", "owner_name", "email", "city").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count enquiries")
	}

	var enquiryMs []*model.EnquiryModel
	if err := page(query, filter.ListParams, enquirySortColumns, "created_at").Find(&enquiryMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list enquiries")
	}

	enquiries := make([]*entity.Enquiry, len(enquiryMs))
	for i, enquiryM := range enquiryMs {
		enquiries[i] = toEnquiryDomain(enquiryM)
	}

	return enquiries, total, nil
}

func toEnquiryDomain(data *model.EnquiryModel) *entity.Enquiry {
	return &entity.Enquiry{
		ID:          data.ID,
		ShopDetails: toShopDetails(data.ShopFields),
		Status:      entity.EnquiryStatus(data.Status),
		Reason:      data.Reason,
		DecidedBy:   data.DecidedBy,
		DecidedAt:   data.DecidedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEnquiryDomain(data *entity.Enquiry) *model.EnquiryModel {
	return &model.EnquiryModel{
		ID:         data.ID,
		ShopFields: fromShopDetails(data.ShopDetails),
		Status:     string(data.Status),
		Reason:     data.Reason,
		DecidedBy:  data.DecidedBy,
		DecidedAt:  data.DecidedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
