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

var customerSortColumns = map[string]string{
	"name":       "full_name",
	"email":      "email",
	"created_at": "created_at",
}

// customerRepository implements repository.CustomerRepository using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a profile. A second profile for the same credential fails with ErrCustomerExists.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Omit("Credential").Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCustomerExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCredentialNotFound
		}

		return executeError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its id.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByAuthID retrieves the profile of a credential.
func (repo *customerRepository) FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(ctx, "auth_id = ?", authID)
}

func (repo *customerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// Update saves the editable profile fields and status.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Select("full_name", "phone", "address", "status", "updated_at").
		Updates(customerM)
	if result.Error != nil {
		return executeError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// List returns a page of profiles matching the search over name, email and phone.
func (repo *customerRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	query = searchAny(query, params.Search, "full_name", "email", "phone").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerMs []*model.CustomerModel
	if err := page(query, params, customerSortColumns, "created_at").Find(&customerMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, len(customerMs))
	for i, customerM := range customerMs {
		customers[i] = toCustomerDomain(customerM)
	}

	return customers, total, nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        data.ID,
		AuthID:    data.AuthID,
		FullName:  data.FullName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Status:    entity.Status(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        data.ID,
		AuthID:    data.AuthID,
		FullName:  data.FullName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
