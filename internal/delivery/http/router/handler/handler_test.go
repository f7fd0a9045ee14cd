package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	"cakehaven/internal/delivery/http/middleware"
	"cakehaven/internal/delivery/http/validator"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{Pagination: &config.PaginationConfig{DefaultLimit: 10, MaxLimit: 50}}
	cfg.HTTP.Cookie.Name = "token"

	return cfg
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// testRequest drives one handler through the production error handler and validator.
type testRequest struct {
	method      string
	target      string
	body        string
	contentType string
	identity    *entity.Identity
	id          string
}

func (r testRequest) do(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	contentType := r.contentType
	if contentType == "" && r.body != "" {
		contentType = echo.MIMEApplicationJSON
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if r.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(r.id)
	}
	if r.identity != nil {
		deliverycontext.SetIdentity(c, *r.identity)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func customer() *entity.Identity {
	return &entity.Identity{SubjectID: uuid.MustParse("0199f0a0-0000-7000-8000-000000000001"), Role: entity.RoleCustomer, TokenID: "jti-c"}
}

func shopAdmin() *entity.Identity {
	return &entity.Identity{SubjectID: uuid.MustParse("0199f0a0-0000-7000-8000-000000000002"), Role: entity.RoleShopAdmin, TokenID: "jti-s"}
}

func superAdmin() *entity.Identity {
	return &entity.Identity{SubjectID: uuid.MustParse("0199f0a0-0000-7000-8000-000000000003"), Role: entity.RoleSuperAdmin, TokenID: "jti-a"}
}

func TestHealthCheck(t *testing.T) {
	rec, env := testRequest{method: http.MethodGet, target: "/health"}.do(t, HealthCheck)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, env))
}

func TestPager_ListQuery(t *testing.T) {
	p := newPager(testConfig())

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantDesc  bool
		wantErr   bool
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit", query: "page=3&limit=25&order=desc", wantPage: 3, wantLimit: 25, wantDesc: true},
		{name: "page below one clamps", query: "page=-4", wantPage: 1, wantLimit: 10},
		{name: "limit above max clamps", query: "limit=500", wantPage: 1, wantLimit: 50},
		{name: "zero limit keeps default", query: "limit=0", wantPage: 1, wantLimit: 10},
		{name: "order is case insensitive", query: "order=DESC", wantPage: 1, wantLimit: 10, wantDesc: true},
		{name: "non numeric page", query: "page=two", wantErr: true},
		{name: "non numeric limit", query: "limit=ten", wantErr: true},
		{name: "bad order", query: "order=sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil), httptest.NewRecorder())

			got, err := p.listQuery(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantDesc, got.Desc)
		})
	}
}

func TestPager_Defaults(t *testing.T) {
	p := newPager(&config.Config{})

	assert.Equal(t, 20, p.defaultLimit)
	assert.Equal(t, 100, p.maxLimit)
}

func TestListQuery_SearchAndSort(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?search=+choco+&sort=price", nil), httptest.NewRecorder())

	got, err := newPager(testConfig()).listQuery(c)
	require.NoError(t, err)
	assert.Equal(t, "choco", got.Search)
	assert.Equal(t, "price", got.Sort)
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	_, err := pathID(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	want := uuid.New()
	c.SetParamValues(want.String())
	got, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatusParam(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?status=INACTIVE", nil), httptest.NewRecorder())
	status, err := statusParam(c)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, entity.StatusInactive, *status)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	status, err = statusParam(c)
	require.NoError(t, err)
	assert.Nil(t, status)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?status=archived", nil), httptest.NewRecorder())
	_, err = statusParam(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
