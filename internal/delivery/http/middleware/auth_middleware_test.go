package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	mockUsecase "cakehaven/internal/mocks/usecase"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Cookie.Name = "token"

	return cfg
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func okHandler(c echo.Context) error {
	id, _ := deliverycontext.GetIdentity(c)

	return c.String(http.StatusOK, id.SubjectID.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	subject := uuid.New()
	identity := entity.Identity{SubjectID: subject, Role: entity.RoleCustomer, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name       string
		prepare    func(req *http.Request)
		setupMock  func(auth *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:    "bearer header",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer good-token") },
			setupMock: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().Authenticate(mock.Anything, "good-token").Return(identity, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "scheme is case insensitive",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "bearer good-token") },
			setupMock: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().Authenticate(mock.Anything, "good-token").Return(identity, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "cookie fallback",
			prepare: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"}) },
			setupMock: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(identity, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			prepare:    func(req *http.Request) {},
			setupMock:  func(auth *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "wrong scheme",
			prepare:    func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Basic abc") },
			setupMock:  func(auth *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:    "revoked or invalid token",
			prepare: func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer revoked") },
			setupMock: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().Authenticate(mock.Anything, "revoked").Return(entity.Identity{}, domainerrors.ErrInvalidToken).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mockUsecase.NewMockAuthUsecase(t)
			tt.setupMock(auth)
			m := NewAuthMiddleware(auth, newTestConfig())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.Authenticate(okHandler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				body := decode(t, rec)
				assert.False(t, body.Success)
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			} else {
				assert.Equal(t, subject.String(), rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_Authenticate_LookupFailure(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	auth.EXPECT().Authenticate(mock.Anything, "tok").Return(entity.Identity{}, assert.AnError).Once()
	m := NewAuthMiddleware(auth, newTestConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := e.NewContext(req, httptest.NewRecorder())

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t), newTestConfig())
	guard := m.RequireRole(entity.RoleShopAdmin, entity.RoleSuperAdmin)

	tests := []struct {
		name       string
		identity   *entity.Identity
		wantStatus int
		wantCode   string
	}{
		{"allowed role", &entity.Identity{SubjectID: uuid.New(), Role: entity.RoleShopAdmin}, http.StatusOK, ""},
		{"other allowed role", &entity.Identity{SubjectID: uuid.New(), Role: entity.RoleSuperAdmin}, http.StatusOK, ""},
		{"wrong role", &entity.Identity{SubjectID: uuid.New(), Role: entity.RoleCustomer}, http.StatusForbidden, "FORBIDDEN"},
		{"no identity", nil, http.StatusUnauthorized, "UNAUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.identity != nil {
				deliverycontext.SetIdentity(c, *tt.identity)
			}

			require.NoError(t, guard(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				body := decode(t, rec)
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}
