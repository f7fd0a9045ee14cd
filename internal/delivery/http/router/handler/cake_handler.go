package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"cakehaven/config"
	"cakehaven/internal/delivery/http/response"
	domainerrors "cakehaven/internal/domain/errors"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

type createCakeRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"`
	Type     string          `json:"type" validate:"max=50"`
	Flavour  string          `json:"flavour" validate:"max=50"`
	Category string          `json:"category" validate:"required,max=50"`
	Size     string          `json:"size" validate:"max=20"`
	Servings int             `json:"servings" validate:"gte=1"`
	Images   []string        `json:"images" validate:"max=10,dive,url"`
}

type updateCakeRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Price    *decimal.Decimal `json:"price"`
	Type     *string          `json:"type" validate:"omitempty,max=50"`
	Flavour  *string          `json:"flavour" validate:"omitempty,max=50"`
	Category *string          `json:"category" validate:"omitempty,min=1,max=50"`
	Size     *string          `json:"size" validate:"omitempty,max=20"`
	Servings *int             `json:"servings" validate:"omitempty,gte=1"`
	Images   []string         `json:"images" validate:"omitempty,max=10,dive,url"`
}

// CakeHandler holds dependencies for catalog handlers.
type CakeHandler struct {
	uc     usecase.CakeUsecase
	pager  pager
	logger *slog.Logger
}

// NewCakeHandler is the constructor for CakeHandler, injected by Fx.
func NewCakeHandler(uc usecase.CakeUsecase, cfg *config.Config, logger *slog.Logger) *CakeHandler {
	return &CakeHandler{uc: uc, pager: newPager(cfg), logger: logger}
}

func (h *CakeHandler) CreateCake(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req createCakeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cake, err := h.uc.CreateCake(c.Request().Context(), id, usecase.CreateCakeInput{
		Name:     req.Name,
		Price:    req.Price,
		Type:     req.Type,
		Flavour:  req.Flavour,
		Category: req.Category,
		Size:     req.Size,
		Servings: req.Servings,
		Images:   req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCakeResponse(cake), "Cake created")
}

func (h *CakeHandler) UpdateCake(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	cakeID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCakeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cake, err := h.uc.UpdateCake(c.Request().Context(), id, cakeID, usecase.UpdateCakeInput{
		Name:     req.Name,
		Price:    req.Price,
		Type:     req.Type,
		Flavour:  req.Flavour,
		Category: req.Category,
		Size:     req.Size,
		Servings: req.Servings,
		Images:   req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCakeResponse(cake), "Cake updated")
}

func (h *CakeHandler) ToggleCakeStatus(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	cakeID, err := pathID(c)
	if err != nil {
		return err
	}

	cake, err := h.uc.ToggleCakeStatus(c.Request().Context(), id, cakeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCakeResponse(cake), "Cake is now "+string(cake.Status))
}

func (h *CakeHandler) DeleteCake(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	cakeID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCake(c.Request().Context(), id, cakeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cake deleted")
}

// GetAllCakes supports search, sort (name, price, created_at), order and the
// category, type, flavour and status filters.
func (h *CakeHandler) GetAllCakes(c echo.Context) error {
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

	page, err := h.uc.GetAllCakes(c.Request().Context(), id, usecase.CakeQuery{
		ListQuery: listQuery,
		Category:  strings.TrimSpace(c.QueryParam("category")),
		Type:      strings.TrimSpace(c.QueryParam("type")),
		Flavour:   strings.TrimSpace(c.QueryParam("flavour")),
		Status:    status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newCakeResponse), "")
}

func (h *CakeHandler) GetCake(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	cakeID, err := pathID(c)
	if err != nil {
		return err
	}

	cake, err := h.uc.GetCake(c.Request().Context(), id, cakeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCakeResponse(cake), "")
}

// UploadImage stores the multipart "image" file and returns its URL.
func (h *CakeHandler) UploadImage(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logs.FromContext(c.Request().Context(), h.logger).Warn("Failed to close uploaded image", slog.Any("error", closeErr))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}

	url, err := h.uc.UploadCakeImage(c.Request().Context(), id, usecase.UploadImageInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
