package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/usecase"
)

func createTestCartService(t *testing.T) (*repoFixtures, usecase.CartUsecase) {
	fx := newRepoFixtures(t)

	return fx, NewCartService(fx.factory, discardLogger())
}

func TestCartService_AddToCart(t *testing.T) {
	fx, svc := createTestCartService(t)
	ctx := context.Background()
	buyer := customerID()
	cake := ownedCake(shopAdminID())

	fx.activeCustomer(buyer.SubjectID)
	fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	fx.cart.EXPECT().AddOrIncrement(ctx, &entity.CartLine{
		CustomerID: buyer.SubjectID,
		CakeID:     cake.ID,
		Quantity:   2,
		Price:      cake.Price,
	}).RunAndReturn(func(_ context.Context, line *entity.CartLine) (*entity.CartLine, error) {
		merged := *line
		merged.ID = uuid.New()
		merged.Quantity += 3

		return &merged, nil
	})

	line, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity, "existing quantity is incremented")
}

func TestCartService_AddToCart_Rejections(t *testing.T) {
	cake := ownedCake(shopAdminID())
	buyer := customerID()

	t.Run("inactive cake", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()
		inactive := *cake
		inactive.Status = entity.StatusInactive

		fx.activeCustomer(buyer.SubjectID)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(&inactive, nil)

		_, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCakeInactive)
	})

	t.Run("cake of a suspended shop", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()
		suspended := *cake
		suspended.ShopSuspended = true

		fx.activeCustomer(buyer.SubjectID)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(&suspended, nil)

		_, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCakeInactive)
	})

	t.Run("missing cake", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()

		fx.activeCustomer(buyer.SubjectID)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(nil, repository.ErrCakeNotFound)

		_, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCakeNotFound)
	})

	t.Run("deactivated customer", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()

		fx.customers.EXPECT().FindByAuthID(ctx, buyer.SubjectID).
			Return(&entity.Customer{ID: uuid.New(), AuthID: buyer.SubjectID, Status: entity.StatusInactive}, nil)

		_, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})

	t.Run("customer without a profile", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()

		fx.customers.EXPECT().FindByAuthID(ctx, buyer.SubjectID).Return(nil, repository.ErrCustomerNotFound)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(nil, repository.ErrCakeNotFound)

		_, err := svc.AddToCart(ctx, buyer, usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCakeNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, svc := createTestCartService(t)

		_, err := svc.AddToCart(context.Background(), customerID(), usecase.AddToCartInput{CakeID: cake.ID})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("shop admin", func(t *testing.T) {
		_, svc := createTestCartService(t)

		_, err := svc.AddToCart(context.Background(), shopAdminID(), usecase.AddToCartInput{CakeID: cake.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCartService_GetCart(t *testing.T) {
	fx, svc := createTestCartService(t)
	ctx := context.Background()
	buyer := customerID()
	lines := []*entity.CartLine{
		{ID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("450.00")},
		{ID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("120.50")},
	}

	fx.cart.EXPECT().ListByCustomer(ctx, buyer.SubjectID).Return(lines, nil)

	cart, err := svc.GetCart(ctx, buyer)

	require.NoError(t, err)
	assert.Equal(t, lines, cart.Items)
	assert.Equal(t, "1020.50", cart.Total.StringFixed(2))
}

func TestCartService_UpdateCartItem(t *testing.T) {
	buyer := customerID()

	t.Run("owner", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()
		line := &entity.CartLine{ID: uuid.New(), CustomerID: buyer.SubjectID, Quantity: 1}

		fx.cart.EXPECT().FindByID(ctx, line.ID).Return(line, nil)
		fx.activeCustomer(buyer.SubjectID)
		fx.cart.EXPECT().UpdateQuantity(ctx, line.ID, 4).Return(nil)

		got, err := svc.UpdateCartItem(ctx, buyer, line.ID, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, got.Quantity)
	})

	t.Run("other customer", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()
		line := &entity.CartLine{ID: uuid.New(), CustomerID: uuid.New(), Quantity: 1}

		fx.cart.EXPECT().FindByID(ctx, line.ID).Return(line, nil)

		_, err := svc.UpdateCartItem(ctx, buyer, line.ID, 4)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing line", func(t *testing.T) {
		fx, svc := createTestCartService(t)
		ctx := context.Background()
		missing := uuid.New()

		fx.cart.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrCartLineNotFound)

		_, err := svc.UpdateCartItem(ctx, buyer, missing, 4)

		assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, svc := createTestCartService(t)

		_, err := svc.UpdateCartItem(context.Background(), buyer, uuid.New(), 0)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCartService_RemoveCartItem(t *testing.T) {
	fx, svc := createTestCartService(t)
	ctx := context.Background()
	buyer := customerID()
	line := &entity.CartLine{ID: uuid.New(), CustomerID: buyer.SubjectID}

	fx.cart.EXPECT().FindByID(ctx, line.ID).Return(line, nil)
	fx.cart.EXPECT().Delete(ctx, line.ID).Return(nil)

	require.NoError(t, svc.RemoveCartItem(ctx, buyer, line.ID))
}

func TestCartService_ClearCart(t *testing.T) {
	fx, svc := createTestCartService(t)
	ctx := context.Background()
	buyer := customerID()

	fx.cart.EXPECT().DeleteByCustomer(ctx, buyer.SubjectID).Return(nil)

	require.NoError(t, svc.ClearCart(ctx, buyer))
	fx.cart.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
