package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/usecase"
)

type orderItemRequest struct {
	CakeID   uuid.UUID `json:"cake_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1,lte=99"`
}

type createOrderRequest struct {
	Items    []orderItemRequest `json:"items" validate:"omitempty,max=50,dive"`
	FromCart bool               `json:"from_cart"`
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=Completed Cancelled"`
}

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	pager  pager
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, cfg *config.Config, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, pager: newPager(cfg), logger: logger}
}

// CreateOrder checks out either the listed items or the whole cart.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.CreateOrderInput{FromCart: req.FromCart}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{CakeID: item.CakeID, Quantity: item.Quantity})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order), "Order placed")
}

func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	return h.list(c, h.uc.GetMyOrders)
}

func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	return h.list(c, h.uc.GetAllOrders)
}

func (h *OrderHandler) GetShopOrders(c echo.Context) error {
	return h.list(c, h.uc.GetShopOrders)
}

type orderLister func(ctx context.Context, id entity.Identity, query usecase.OrderQuery) (*entity.Page[*entity.Order], error)

func (h *OrderHandler) list(c echo.Context, fetch orderLister) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	listQuery, err := h.pager.listQuery(c)
	if err != nil {
		return err
	}

	query := usecase.OrderQuery{ListQuery: listQuery}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("status must be Pending, Completed or Cancelled")
		}
		query.Status = &status
	}

	page, err := fetch(c.Request().Context(), id, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newOrderResponse), "")
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "")
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Order is now "+string(order.Status))
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Order cancelled")
}

// GetOrderQR streams the pickup QR code as a PNG image.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.GetOrderQR(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
