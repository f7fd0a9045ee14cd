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
)

var orderSortColumns = map[string]string{
	"total":      "total",
	"created_at": "created_at",
}

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the header, then all lines in one batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNoExists
		}

		return executeError(err, "failed to create order")
	}

	lineMs := make([]*model.OrderLineModel, len(order.Items))
	for i, item := range order.Items {
		item.OrderID = orderM.ID
		lineMs[i] = fromOrderLineDomain(item)
	}
	if len(lineMs) > 0 {
		if err := db.Create(&lineMs).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrValidationFailed.WrapMessage("order line quantity must be at least 1")
			}

			return executeError(err, "failed to create order lines")
		}
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range lineMs {
		order.Items[i].ID = lineM.ID
	}

	return nil
}

// FindByID returns the order with its lines and the customer email.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.withDetails(repo.db.WithContext(ctx)).Where("id = ?", id).Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns a page of orders, newest first unless asked otherwise.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ShopID != nil {
		query = query.Where("id IN (?)",
			repo.db.Model(&model.OrderLineModel{}).Select("order_id").Where("shop_id = ?", *filter.ShopID))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = searchAny(query, filter.Search, "order_no").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	params := filter.ListParams
	if params.SortBy == "" {
		params.Desc = true
	}

	var orderMs []*model.OrderModel
	if err := repo.withDetails(page(query, params, orderSortColumns, "created_at")).Find(&orderMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(orderMs))
	for i, orderM := range orderMs {
		orders[i] = toOrderDomain(orderM)
	}

	return orders, total, nil
}

// UpdateStatus moves the order from one status to another; it fails when the stored status is not from.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return executeError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusChanged
	}

	return nil
}

func (repo *orderRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "email")
		}).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("cake_name ASC")
		})
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         data.ID,
		OrderNo:    data.OrderNo,
		CustomerID: data.CustomerID,
		Status:     entity.OrderStatus(data.Status),
		Total:      data.Total,
		Items:      make([]*entity.OrderLine, len(data.Lines)),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Customer != nil {
		order.CustomerEmail = data.Customer.Email
	}
	for i := range data.Lines {
		order.Items[i] = toOrderLineDomain(&data.Lines[i])
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         data.ID,
		OrderNo:    data.OrderNo,
		CustomerID: data.CustomerID,
		Status:     string(data.Status),
		Total:      data.Total,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	return &entity.OrderLine{
		ID:       data.ID,
		OrderID:  data.OrderID,
		CakeID:   data.CakeID,
		CakeName: data.CakeName,
		ShopID:   data.ShopID,
		Quantity: data.Quantity,
		Price:    data.Price,
	}
}

func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	return &model.OrderLineModel{
		ID:       data.ID,
		OrderID:  data.OrderID,
		CakeID:   data.CakeID,
		CakeName: data.CakeName,
		ShopID:   data.ShopID,
		Quantity: data.Quantity,
		Price:    data.Price,
	}
}
