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

type createCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"max=20"`
	Address  string `json:"address" validate:"max=255"`
}

type updateCustomerRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// CustomerHandler holds dependencies for customer profile handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	pager  pager
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, cfg *config.Config, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, pager: newPager(cfg), logger: logger}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), id, usecase.CreateCustomerInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer), "Customer profile created")
}

func (h *CustomerHandler) GetMyProfile(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	customer, err := h.uc.GetMyProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "")
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "")
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), id, customerID, usecase.UpdateCustomerInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Customer profile updated")
}

func (h *CustomerHandler) ToggleCustomerStatus(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.uc.ToggleCustomerStatus(c.Request().Context(), id, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Customer is now "+string(customer.Status))
}

func (h *CustomerHandler) GetAllCustomers(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	query, err := h.pager.listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.uc.GetAllCustomers(c.Request().Context(), id, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newCustomerResponse), "")
}
