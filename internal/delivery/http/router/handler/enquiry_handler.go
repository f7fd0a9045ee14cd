package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/usecase"
)

type createEnquiryRequest struct {
	ShopName  string `json:"shop_name" validate:"required,max=100"`
	OwnerName string `json:"owner_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Address   string `json:"address" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=100"`
}

type rejectEnquiryRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type approveEnquiryResponse struct {
	Enquiry enquiryResponse `json:"enquiry"`
	Shop    shopResponse    `json:"shop"`
}

// EnquiryHandler holds dependencies for the shop enquiry workflow.
type EnquiryHandler struct {
	uc     usecase.EnquiryUsecase
	pager  pager
	logger *slog.Logger
}

// NewEnquiryHandler is the constructor for EnquiryHandler, injected by Fx.
func NewEnquiryHandler(uc usecase.EnquiryUsecase, cfg *config.Config, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{uc: uc, pager: newPager(cfg), logger: logger}
}

// CreateEnquiry is public: prospective sellers apply without an account.
func (h *EnquiryHandler) CreateEnquiry(c echo.Context) error {
	var req createEnquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	enquiry, err := h.uc.CreateEnquiry(c.Request().Context(), entity.ShopDetails{
		ShopName:  req.ShopName,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEnquiryResponse(enquiry), "Enquiry submitted")
}

func (h *EnquiryHandler) GetEnquiries(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	listQuery, err := h.pager.listQuery(c)
	if err != nil {
		return err
	}

	query := usecase.EnquiryQuery{ListQuery: listQuery}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.EnquiryStatus(strings.ToLower(raw))
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("status must be pending, approved or rejected")
		}
		query.Status = &status
	}

	page, err := h.uc.GetEnquiries(c.Request().Context(), id, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newEnquiryResponse), "")
}

func (h *EnquiryHandler) GetEnquiry(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	enquiryID, err := pathID(c)
	if err != nil {
		return err
	}

	enquiry, err := h.uc.GetEnquiry(c.Request().Context(), id, enquiryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEnquiryResponse(enquiry), "")
}

// ApproveEnquiry returns the approved enquiry together with the new shop.
func (h *EnquiryHandler) ApproveEnquiry(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	enquiryID, err := pathID(c)
	if err != nil {
		return err
	}

	out, err := h.uc.ApproveEnquiry(c.Request().Context(), id, enquiryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, approveEnquiryResponse{
		Enquiry: newEnquiryResponse(out.Enquiry),
		Shop:    newShopResponse(out.Shop),
	}, "Enquiry approved")
}

func (h *EnquiryHandler) RejectEnquiry(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	enquiryID, err := pathID(c)
	if err != nil {
		return err
	}

	var req rejectEnquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	enquiry, err := h.uc.RejectEnquiry(c.Request().Context(), id, enquiryID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEnquiryResponse(enquiry), "Enquiry rejected")
}
