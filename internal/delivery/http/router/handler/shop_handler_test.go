package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	mockUsecase "cakehaven/internal/mocks/usecase"
	"cakehaven/internal/usecase"
)

func TestShopHandler_GetAllShops(t *testing.T) {
	uc := mockUsecase.NewMockShopUsecase(t)
	h := NewShopHandler(uc, testConfig(), discardLogger())
	id := superAdmin()
	active := entity.StatusActive

	uc.EXPECT().GetAllShops(mock.Anything, *id, usecase.ShopQuery{
		ListQuery: usecase.ListQuery{Page: 1, Limit: 10, Search: "sugar"},
		Status:    &active,
	}).Return(&entity.Page[*entity.Shop]{
		Items: []*entity.Shop{{ID: uuid.New(), ShopDetails: testDetails(), Status: entity.StatusActive}},
		Total: 1,
		Page:  1,
		Limit: 10,
	}, nil).Once()

	rec, env := testRequest{method: http.MethodGet, target: "/?search=sugar&status=active", identity: id}.do(t, h.GetAllShops)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[pageResponse[shopResponse]](t, env)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, "Sugar Rush", got.Items[0].ShopName)
	assert.Nil(t, got.Items[0].AdminID)
}

func TestShopHandler_GetShop_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockShopUsecase(t)
	h := NewShopHandler(uc, testConfig(), discardLogger())
	uc.EXPECT().GetShop(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrShopNotFound).Once()

	rec, env := testRequest{method: http.MethodGet, target: "/", identity: superAdmin(), id: uuid.NewString()}.do(t, h.GetShop)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SHOP_NOT_FOUND", env.Error.Code)
}

func TestShopHandler_ToggleShopStatus(t *testing.T) {
	uc := mockUsecase.NewMockShopUsecase(t)
	h := NewShopHandler(uc, testConfig(), discardLogger())
	id := superAdmin()
	shopID := uuid.New()
	uc.EXPECT().ToggleShopStatus(mock.Anything, *id, shopID).
		Return(&entity.Shop{ID: shopID, ShopDetails: testDetails(), Status: entity.StatusInactive}, nil).Once()

	rec, env := testRequest{method: http.MethodPatch, target: "/", identity: id, id: shopID.String()}.do(t, h.ToggleShopStatus)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shop is now inactive", env.Message)
}
