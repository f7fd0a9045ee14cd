package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cakehaven/internal/domain/entity"
	logs "cakehaven/internal/infra/log"
)

// ContextKey is a custom type for echo context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in echo.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyIdentity is the key for storing the authenticated identity in echo.Context.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

type identityKey struct{}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	return logs.RequestID(ctx)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return logs.WithRequestID(ctx, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return logs.FromContext(ctx, fallback)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logs.WithContext(ctx, logger)
}

// SetIdentity stores the authenticated identity in echo.Context and in the request context.
func SetIdentity(c echo.Context, id entity.Identity) {
	c.Set(string(KeyIdentity), id)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), identityKey{}, id)))
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	id, ok := c.Get(string(KeyIdentity)).(entity.Identity)

	return id, ok
}

// IdentityFromContext returns the identity carried by a request context.
func IdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entity.Identity)

	return id, ok
}
