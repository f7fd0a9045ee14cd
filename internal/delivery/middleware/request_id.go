package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"

	deliverycontext "cakehaven/internal/delivery/context"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id, echoes it back in
// X-Request-Id, adds it to the access log and hands a request-scoped logger to the usecases.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed client id or mints a UUID.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, ok := inboundRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if !ok {
			requestID = uuid.NewString()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.SetRequestID(c, requestID)
		slogecho.AddCustomAttributes(c, slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// inboundRequestID accepts printable ASCII without spaces, so ids can be logged verbatim.
func inboundRequestID(raw string) (string, bool) {
	if raw == "" || len(raw) > maxRequestIDLength {
		return "", false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] <= ' ' || raw[i] > '~' {
			return "", false
		}
	}

	return raw, true
}
