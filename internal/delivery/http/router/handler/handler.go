// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/usecase"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// identity returns the caller attached by the auth middleware.
func identity(c echo.Context) (entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthenticated
	}

	return id, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid id")
	}

	return id, nil
}

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is malformed")
	}

	return c.Validate(req)
}

// pager clamps page and limit query parameters.
type pager struct {
	defaultLimit int
	maxLimit     int
}

func newPager(cfg *config.Config) pager {
	p := pager{defaultLimit: 20, maxLimit: 100}
	if cfg.Pagination != nil {
		if cfg.Pagination.DefaultLimit > 0 {
			p.defaultLimit = cfg.Pagination.DefaultLimit
		}
		if cfg.Pagination.MaxLimit > 0 {
			p.maxLimit = cfg.Pagination.MaxLimit
		}
	}

	return p
}

// listQuery reads page, limit, search, sort and order. Out of range values are clamped;
// non-numeric ones are rejected.
func (p pager) listQuery(c echo.Context) (usecase.ListQuery, error) {
	query := usecase.ListQuery{
		Page:   1,
		Limit:  p.defaultLimit,
		Search: strings.TrimSpace(c.QueryParam("search")),
		Sort:   strings.TrimSpace(c.QueryParam("sort")),
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, domainerrors.ErrValidationFailed.WithDetails("page must be a number")
		}
		query.Page = max(page, 1)
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, domainerrors.ErrValidationFailed.WithDetails("limit must be a number")
		}
		if limit > 0 {
			query.Limit = min(limit, p.maxLimit)
		}
	}

	switch strings.ToLower(c.QueryParam("order")) {
	case "", "asc":
	case "desc":
		query.Desc = true
	default:
		return query, domainerrors.ErrValidationFailed.WithDetails("order must be asc or desc")
	}

	return query, nil
}

func statusParam(c echo.Context) (*entity.Status, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status := entity.Status(strings.ToLower(raw))
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or inactive")
	}

	return &status, nil
}
