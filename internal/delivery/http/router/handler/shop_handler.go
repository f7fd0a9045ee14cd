package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/usecase"
)

// ShopHandler holds dependencies for shop management handlers.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	pager  pager
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, cfg *config.Config, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{uc: uc, pager: newPager(cfg), logger: logger}
}

func (h *ShopHandler) GetAllShops(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	listQuery, err := h.pager.listQuery(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	page, err := h.uc.GetAllShops(c.Request().Context(), id, usecase.ShopQuery{ListQuery: listQuery, Status: status})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newShopResponse), "")
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	shopID, err := pathID(c)
	if err != nil {
		return err
	}

	shop, err := h.uc.GetShop(c.Request().Context(), id, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newShopResponse(shop), "")
}

func (h *ShopHandler) ToggleShopStatus(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	shopID, err := pathID(c)
	if err != nil {
		return err
	}

	shop, err := h.uc.ToggleShopStatus(c.Request().Context(), id, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newShopResponse(shop), "Shop is now "+string(shop.Status))
}
