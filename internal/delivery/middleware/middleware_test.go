package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	domainerrors "cakehaven/internal/domain/errors"
	logs "cakehaven/internal/infra/log"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"keeps incoming id", "req-123", true},
		{"generates when missing", "", false},
		{"replaces oversized id", strings.Repeat("x", 129), false},
		{"replaces id with spaces", "abc def", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = logs.RequestID(c.Request().Context())
				logs.FromContext(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, got, line["request_id"])
		})
	}
}

func TestRequestIDMiddleware_AddsIDToAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(slogecho.New(logger))
	e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)
	e.GET("/api/cakes/getAllCakes", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/cakes/getAllCakes", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-abc", line["request_id"])
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantLevel  string
		wantStatus int
	}{
		{
			name:       "success",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel:  "INFO",
			wantStatus: http.StatusOK,
		},
		{
			name:       "client error logged as warning",
			handler:    func(c echo.Context) error { return echo.ErrBadRequest },
			wantLevel:  "WARN",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "domain error uses its status",
			handler:    func(c echo.Context) error { return domainerrors.ErrCakeNotFound },
			wantLevel:  "WARN",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error logged as error",
			handler:    func(c echo.Context) error { return errors.New("boom") },
			wantLevel:  "ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = true
			m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cakes/getAllCakes?page=2", nil), rec)

			var handlerErr error
			err := m.Handle(func(c echo.Context) error {
				handlerErr = tt.handler(c)

				return handlerErr
			})(c)
			assert.Equal(t, handlerErr, err, "errors pass through to the error handler")

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "/api/cakes/getAllCakes", line["uri"])
			assert.Equal(t, "page=2", line["query"])
			assert.InDelta(t, float64(tt.wantStatus), line["status"], 0)
		})
	}
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := m.Handle(func(echo.Context) error { return echo.ErrBadRequest })(c)

	assert.ErrorIs(t, err, echo.ErrBadRequest)
	assert.Zero(t, buf.Len())
}
