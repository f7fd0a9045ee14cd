package http

import (
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	deliverycontext "cakehaven/internal/delivery/context"
	"cakehaven/internal/delivery/http/middleware"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/delivery/http/router"
	"cakehaven/internal/delivery/http/router/handler"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	mockUsecase "cakehaven/internal/mocks/usecase"
)

type testServer struct {
	echo      *echo.Echo
	auth      *mockUsecase.MockAuthUsecase
	shops     *mockUsecase.MockShopUsecase
	enquiries *mockUsecase.MockEnquiryUsecase
	cart      *mockUsecase.MockCartUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.Cookie.Name = "token"
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		auth:      mockUsecase.NewMockAuthUsecase(t),
		shops:     mockUsecase.NewMockShopUsecase(t),
		enquiries: mockUsecase.NewMockEnquiryUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
	}

	ts.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(ts.auth, cfg, logger),
		CustomerHandler: handler.NewCustomerHandler(mockUsecase.NewMockCustomerUsecase(t), cfg, logger),
		ShopHandler:     handler.NewShopHandler(ts.shops, cfg, logger),
		EnquiryHandler:  handler.NewEnquiryHandler(ts.enquiries, cfg, logger),
		CakeHandler:     handler.NewCakeHandler(mockUsecase.NewMockCakeUsecase(t), cfg, logger),
		CartHandler:     handler.NewCartHandler(ts.cart, logger),
		OrderHandler:    handler.NewOrderHandler(mockUsecase.NewMockOrderUsecase(t), cfg, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(ts.auth, cfg),
	}).RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) signedInAs(token string, role entity.Role) entity.Identity {
	id := entity.Identity{SubjectID: uuid.New(), Role: role, TokenID: token}
	ts.auth.EXPECT().Authenticate(mock.Anything, token).Return(id, nil)

	return id
}

func (ts *testServer) serve(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var env response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.serve(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RouteGuards(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		role       entity.Role
		wantStatus int
		wantCode   string
	}{
		{"cart requires a token", http.MethodGet, "/api/cart/getCart", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"cart rejects shop admins", http.MethodGet, "/api/cart/getCart", entity.RoleShopAdmin, http.StatusForbidden, "FORBIDDEN"},
		{"shops reject customers", http.MethodGet, "/api/shops/getAllShops", entity.RoleCustomer, http.StatusForbidden, "FORBIDDEN"},
		{"enquiry review rejects shop admins", http.MethodGet, "/api/enquiry/getEnquiries", entity.RoleShopAdmin, http.StatusForbidden, "FORBIDDEN"},
		{"cake mutations reject customers", http.MethodPost, "/api/cakes/createCake", entity.RoleCustomer, http.StatusForbidden, "FORBIDDEN"},
		{"order status needs super admin", http.MethodPatch, "/api/orders/updateOrderStatus/" + uuid.NewString(), entity.RoleShopAdmin, http.StatusForbidden, "FORBIDDEN"},
		{"customer listing rejects customers", http.MethodGet, "/api/customers/getAllCustomers", entity.RoleCustomer, http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			token := ""
			if tt.role != "" {
				token = "tok-" + string(tt.role)
				ts.signedInAs(token, tt.role)
			}

			rec, env := ts.serve(t, tt.method, tt.target, token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestServer_RevokedToken(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().Authenticate(mock.Anything, "revoked").Return(entity.Identity{}, domainerrors.ErrInvalidToken)

	rec, env := ts.serve(t, http.MethodGet, "/api/auth/me", "revoked", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestServer_SuperAdminListsShops(t *testing.T) {
	ts := newTestServer(t)
	id := ts.signedInAs("root", entity.RoleSuperAdmin)
	ts.shops.EXPECT().GetAllShops(mock.Anything, id, mock.Anything).
		Return(&entity.Page[*entity.Shop]{Items: []*entity.Shop{}, Page: 1, Limit: 20}, nil).Once()

	rec, env := ts.serve(t, http.MethodGet, "/api/shops/getAllShops", "root", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestServer_PublicEnquiry(t *testing.T) {
	ts := newTestServer(t)
	ts.enquiries.EXPECT().CreateEnquiry(mock.Anything, mock.Anything).
		Return(&entity.Enquiry{ID: uuid.New(), Status: entity.EnquiryPending}, nil).Once()

	rec, _ := ts.serve(t, http.MethodPost, "/api/enquiry/createEnquiry", "",
		`{"shop_name":"Sugar Rush","owner_name":"Grace","email":"grace@sugarrush.test","phone":"1","address":"a","city":"Taipei"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_IdentityReachesUsecase(t *testing.T) {
	ts := newTestServer(t)
	id := ts.signedInAs("buyer", entity.RoleCustomer)
	ts.cart.EXPECT().ClearCart(mock.Anything, id).Return(nil).Once()

	rec, _ := ts.serve(t, http.MethodDelete, "/api/cart/clearCart", "buyer", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnhandledErrorIsHidden(t *testing.T) {
	ts := newTestServer(t)
	id := ts.signedInAs("buyer", entity.RoleCustomer)
	ts.cart.EXPECT().ClearCart(mock.Anything, id).Return(errors.New("pq: connection refused")).Once()

	rec, env := ts.serve(t, http.MethodDelete, "/api/cart/clearCart", "buyer", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.serve(t, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.serve(t, http.MethodPost, "/api/enquiry/createEnquiry", "", `{"shop_name":"`+strings.Repeat("a", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
