package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	mockUsecase "cakehaven/internal/mocks/usecase"
	"cakehaven/internal/usecase"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	uc := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc, testConfig(), discardLogger())
	id := customer()

	uc.EXPECT().CreateCustomer(mock.Anything, *id, usecase.CreateCustomerInput{FullName: "Ada Lovelace", Phone: "0912", Address: "1 Analytical St"}).
		Return(&entity.Customer{ID: uuid.New(), AuthID: id.SubjectID, FullName: "Ada Lovelace", Status: entity.StatusActive}, nil).Once()

	rec, env := testRequest{
		method:   http.MethodPost,
		target:   "/api/customers/createCustomer",
		body:     `{"full_name":"Ada Lovelace","phone":"0912","address":"1 Analytical St"}`,
		identity: id,
	}.do(t, h.CreateCustomer)

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[customerResponse](t, env)
	assert.Equal(t, id.SubjectID, got.AuthID)
	assert.Equal(t, entity.StatusActive, got.Status)
}

func TestCustomerHandler_CreateCustomer_Duplicate(t *testing.T) {
	uc := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc, testConfig(), discardLogger())
	uc.EXPECT().CreateCustomer(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCustomerAlreadyExists).Once()

	rec, env := testRequest{
		method:   http.MethodPost,
		target:   "/api/customers/createCustomer",
		body:     `{"full_name":"Ada"}`,
		identity: customer(),
	}.do(t, h.CreateCustomer)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	uc := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc, testConfig(), discardLogger())
	id := customer()
	customerID := uuid.New()

	uc.EXPECT().UpdateCustomer(mock.Anything, *id, customerID, mock.MatchedBy(func(in usecase.UpdateCustomerInput) bool {
		return in.FullName == nil && in.Phone != nil && *in.Phone == "0999" && in.Address == nil
	})).Return(&entity.Customer{ID: customerID, Phone: "0999"}, nil).Once()

	rec, env := testRequest{
		method:   http.MethodPatch,
		target:   "/api/customers/updateCustomer/" + customerID.String(),
		body:     `{"phone":"0999"}`,
		identity: id,
		id:       customerID.String(),
	}.do(t, h.UpdateCustomer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0999", decodeData[customerResponse](t, env).Phone)
}

func TestCustomerHandler_GetCustomer_BadID(t *testing.T) {
	h := NewCustomerHandler(mockUsecase.NewMockCustomerUsecase(t), testConfig(), discardLogger())

	rec, env := testRequest{method: http.MethodGet, target: "/api/customers/getCustomer/x", identity: customer(), id: "x"}.do(t, h.GetCustomer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestCustomerHandler_ToggleCustomerStatus(t *testing.T) {
	uc := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc, testConfig(), discardLogger())
	id := superAdmin()
	customerID := uuid.New()
	uc.EXPECT().ToggleCustomerStatus(mock.Anything, *id, customerID).
		Return(&entity.Customer{ID: customerID, Status: entity.StatusInactive}, nil).Once()

	rec, env := testRequest{method: http.MethodPatch, target: "/", identity: id, id: customerID.String()}.do(t, h.ToggleCustomerStatus)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Customer is now inactive", env.Message)
}

func TestCustomerHandler_GetAllCustomers(t *testing.T) {
	uc := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(uc, testConfig(), discardLogger())
	id := shopAdmin()

	uc.EXPECT().GetAllCustomers(mock.Anything, *id, usecase.ListQuery{Page: 2, Limit: 1, Search: "ada"}).
		Return(&entity.Page[*entity.Customer]{
			Items: []*entity.Customer{{ID: uuid.New(), FullName: "Ada"}},
			Total: 3,
			Page:  2,
			Limit: 1,
		}, nil).Once()

	rec, env := testRequest{method: http.MethodGet, target: "/api/customers/getAllCustomers?page=2&limit=1&search=ada", identity: id}.do(t, h.GetAllCustomers)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[pageResponse[customerResponse]](t, env)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, 3, got.TotalPages)
}
