package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/usecase"
)

type addToCartRequest struct {
	CakeID   uuid.UUID `json:"cake_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1,lte=99"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=99"`
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// AddToCart adds the cake or increments the quantity already in the cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	line, err := h.uc.AddToCart(c.Request().Context(), id, usecase.AddToCartInput{CakeID: req.CakeID, Quantity: req.Quantity})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartLineResponse(line), "Added to cart")
}

func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart), "")
}

func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	lineID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	line, err := h.uc.UpdateCartItem(c.Request().Context(), id, lineID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartLineResponse(line), "Cart item updated")
}

func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	lineID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveCartItem(c.Request().Context(), id, lineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
