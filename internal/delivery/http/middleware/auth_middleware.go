package middleware

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/usecase"
)

// AuthMiddleware authenticates bearer tokens and enforces fixed roles.
type AuthMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, cookieName: cfg.HTTP.Cookie.Name}
}

// Authenticate reads the token from the Authorization header, falling back to
// the auth cookie, and attaches the identity to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.extractToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication token is missing")
		}

		id, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, id)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", false
		}

		return strings.TrimSpace(token), true
	}

	if m.cookieName == "" {
		return "", false
	}
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// RequireRole allows the request through when the identity carries one of the roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
			}

			if !slices.Contains(roles, id.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role '"+id.Role.String()+"'")
			}

			return next(c)
		}
	}
}
