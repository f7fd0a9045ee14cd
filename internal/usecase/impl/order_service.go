package impl

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/policy"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

// maxOrderNoAttempts bounds retries when a generated order number collides.
const maxOrderNoAttempts = 3

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	qrcodes   service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
	newNo     func(now time.Time) string
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	repos repository.RepositoryFactory,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		repos:     repos,
		qrcodes:   qrcodes,
		logger:    logger,
		now:       time.Now,
		newNo:     newOrderNo,
	}
}

// newOrderNo formats CH-<yyyymmdd>-<8 hex chars>.
func newOrderNo(now time.Time) string {
	id := uuid.New()

	return "CH-" + now.UTC().Format("20060102") + "-" + hex.EncodeToString(id[:4])
}

// CreateOrder checks out explicit items at current cake prices, or the cart at its
// snapshotted prices. Header and lines are written in one transaction; a cart
// checkout also empties the cart in that transaction.
func (srv *orderService) CreateOrder(ctx context.Context, id entity.Identity, input usecase.CreateOrderInput) (*entity.Order, error) {
	if err := policy.Order(id, policy.ActionCreate, nil); err != nil {
		return nil, err
	}
	if !input.FromCart && len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order needs at least one item")
	}
	if err := requireActiveAccount(ctx, srv.repos, id); err != nil {
		return nil, err
	}

	var order *entity.Order
	for attempt := 1; ; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var lines []*entity.OrderLine
			var err error
			if input.FromCart {
				lines, err = srv.linesFromCart(ctx, repoFactory, id.SubjectID)
			} else {
				lines, err = srv.linesFromItems(ctx, repoFactory, input.Items)
			}
			if err != nil {
				return err
			}

			now := srv.now()
			order = &entity.Order{
				OrderNo:    srv.newNo(now),
				CustomerID: id.SubjectID,
				Status:     entity.OrderPending,
				Total:      entity.SumLines(lines),
				Items:      lines,
			}
			if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
				return err
			}

			if input.FromCart {
				if err := repoFactory.CartRepo().DeleteByCustomer(ctx, id.SubjectID); err != nil {
					return errors.Wrap(err, "failed to clear cart after checkout")
				}
			}

			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrOrderNoExists) && attempt < maxOrderNoAttempts {
			logs.FromContext(ctx, srv.logger).Warn("Order number collided, retrying", slog.Int("attempt", attempt))

			continue
		}
		if errors.Is(err, repository.ErrOrderNoExists) {
			return nil, domainerrors.ErrOrderNumberConflict
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	logs.FromContext(ctx, srv.logger).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("order_no", order.OrderNo),
		slog.Int("lines", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)))

	return order, nil
}

func (srv *orderService) linesFromItems(ctx context.Context, repoFactory repository.RepositoryFactory, items []usecase.OrderItemInput) ([]*entity.OrderLine, error) {
	quantities := make(map[uuid.UUID]int, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}
		if _, seen := quantities[item.CakeID]; !seen {
			ids = append(ids, item.CakeID)
		}
		quantities[item.CakeID] += item.Quantity
	}

	cakes, err := srv.cakesByID(ctx, repoFactory, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]*entity.OrderLine, 0, len(ids))
	for _, cakeID := range ids {
		cake := cakes[cakeID]
		lines = append(lines, &entity.OrderLine{
			CakeID:   cake.ID,
			CakeName: cake.Name,
			ShopID:   cake.ShopID,
			Quantity: quantities[cakeID],
			Price:    cake.Price,
		})
	}

	return lines, nil
}

func (srv *orderService) linesFromCart(ctx context.Context, repoFactory repository.RepositoryFactory, customerID uuid.UUID) ([]*entity.OrderLine, error) {
	cart, err := repoFactory.CartRepo().ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(cart) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	ids := make([]uuid.UUID, len(cart))
	for i, line := range cart {
		ids[i] = line.CakeID
	}
	cakes, err := srv.cakesByID(ctx, repoFactory, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]*entity.OrderLine, len(cart))
	for i, line := range cart {
		cake := cakes[line.CakeID]
		lines[i] = &entity.OrderLine{
			CakeID:   cake.ID,
			CakeName: cake.Name,
			ShopID:   cake.ShopID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
	}

	return lines, nil
}

// cakesByID loads the cakes and requires every one to exist and be sold by an active shop.
func (srv *orderService) cakesByID(ctx context.Context, repoFactory repository.RepositoryFactory, ids []uuid.UUID) (map[uuid.UUID]*entity.Cake, error) {
	found, err := repoFactory.CakeRepo().FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cakes")
	}

	cakes := make(map[uuid.UUID]*entity.Cake, len(found))
	for _, cake := range found {
		cakes[cake.ID] = cake
	}
	for _, cakeID := range ids {
		cake, ok := cakes[cakeID]
		if !ok {
			return nil, domainerrors.ErrCakeNotFound.WithDetails("cake " + cakeID.String() + " does not exist")
		}
		if !cake.IsAvailable() {
			return nil, domainerrors.ErrCakeUnavailable.WithDetails(cake.Name + " is not available")
		}
	}

	return cakes, nil
}

func (srv *orderService) GetMyOrders(ctx context.Context, id entity.Identity, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	if !id.Is(entity.RoleCustomer) {
		return nil, domainerrors.ErrForbidden
	}
	customerID := id.SubjectID

	return srv.list(ctx, query, repository.OrderFilter{CustomerID: &customerID})
}

func (srv *orderService) GetAllOrders(ctx context.Context, id entity.Identity, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	if !id.Is(entity.RoleSuperAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.list(ctx, query, repository.OrderFilter{})
}

func (srv *orderService) GetShopOrders(ctx context.Context, id entity.Identity, query usecase.OrderQuery) (*entity.Page[*entity.Order], error) {
	if !id.Is(entity.RoleShopAdmin) {
		return nil, domainerrors.ErrForbidden
	}
	shopID := id.SubjectID

	return srv.list(ctx, query, repository.OrderFilter{ShopID: &shopID})
}

func (srv *orderService) list(ctx context.Context, query usecase.OrderQuery, filter repository.OrderFilter) (*entity.Page[*entity.Order], error) {
	filter.ListParams = query.Params()
	filter.Status = query.Status

	orders, total, err := srv.repos.OrderRepo().List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return usecase.NewPage(orders, total, query.ListQuery), nil
}

func (srv *orderService) GetOrder(ctx context.Context, id entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := policy.Order(id, policy.ActionRead, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus moves a pending order to Completed or Cancelled.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id entity.Identity, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := policy.Order(id, policy.ActionUpdate, nil); err != nil {
		return nil, err
	}
	if status != entity.OrderCompleted && status != entity.OrderCancelled {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be Completed or Cancelled")
	}

	order, err := srv.find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return srv.transition(ctx, order, status)
}

// CancelOrder lets the owning customer cancel a pending order.
func (srv *orderService) CancelOrder(ctx context.Context, id entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.find(ctx, orderID)
	if err != nil && !errors.Is(err, domainerrors.ErrOrderNotFound) {
		return nil, err
	}
	if err := policy.Order(id, policy.ActionCancel, order); err != nil {
		return nil, err
	}

	return srv.transition(ctx, order, entity.OrderCancelled)
}

func (srv *orderService) transition(ctx context.Context, order *entity.Order, next entity.OrderStatus) (*entity.Order, error) {
	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrOrderStatusTransition.WithDetails("order is already " + string(order.Status))
	}

	if err := srv.repos.OrderRepo().UpdateStatus(ctx, order.ID, order.Status, next); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderStatusChanged):
			return nil, domainerrors.ErrOrderStatusTransition.WithDetails("order status changed concurrently")
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound
		default:
			return nil, errors.Wrap(err, "failed to update order status")
		}
	}
	order.Status = next

	logs.FromContext(ctx, srv.logger).Info("Order status changed",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(next)))

	return order, nil
}

// GetOrderQR renders the pickup code for anyone allowed to read the order.
func (srv *orderService) GetOrderQR(ctx context.Context, id entity.Identity, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateOrderQR(order.OrderNo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return png, nil
}

func (srv *orderService) find(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.repos.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
