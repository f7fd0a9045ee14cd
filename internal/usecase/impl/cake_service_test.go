package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	mockService "cakehaven/internal/mocks/service"
	"cakehaven/internal/usecase"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func createTestCakeService(t *testing.T, cfg *config.Config) (*repoFixtures, *mockService.MockImageStore, usecase.CakeUsecase) {
	fx := newRepoFixtures(t)
	images := mockService.NewMockImageStore(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return fx, images, NewCakeService(fx.factory, images, cfg, discardLogger())
}

func ownedCake(owner entity.Identity) *entity.Cake {
	return &entity.Cake{
		ID:       uuid.New(),
		ShopID:   owner.SubjectID,
		Name:     "Black Forest",
		Price:    decimal.RequireFromString("450.00"),
		Servings: 8,
		Status:   entity.StatusActive,
	}
}

func TestCakeService_CreateCake(t *testing.T) {
	fx, _, svc := createTestCakeService(t, nil)
	ctx := context.Background()
	owner := shopAdminID()

	fx.activeShop(owner.SubjectID)
	fx.cakes.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cake")).Return(nil)

	cake, err := svc.CreateCake(ctx, owner, usecase.CreateCakeInput{
		Name:     " Red Velvet ",
		Category: "Birthday",
		Price:    decimal.RequireFromString("499.999"),
		Servings: 6,
		Images:   []string{" https://img/1.png ", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, owner.SubjectID, cake.ShopID)
	assert.Equal(t, "Red Velvet", cake.Name)
	assert.Equal(t, "Birthday", cake.Category)
	assert.Equal(t, "500", cake.Price.String())
	assert.Equal(t, []string{"https://img/1.png"}, cake.Images)
	assert.Equal(t, entity.StatusActive, cake.Status)
}

func TestCakeService_CreateCake_Validation(t *testing.T) {
	tests := []struct {
		name    string
		id      entity.Identity
		input   usecase.CreateCakeInput
		wantErr error
	}{
		{"customer", customerID(), usecase.CreateCakeInput{Price: decimal.NewFromInt(1), Servings: 1}, domainerrors.ErrForbidden},
		{"super admin", superAdminID(), usecase.CreateCakeInput{Price: decimal.NewFromInt(1), Servings: 1}, domainerrors.ErrForbidden},
		{"zero price", shopAdminID(), usecase.CreateCakeInput{Price: decimal.Zero, Servings: 1}, domainerrors.ErrValidationFailed},
		{"no servings", shopAdminID(), usecase.CreateCakeInput{Price: decimal.NewFromInt(1)}, domainerrors.ErrValidationFailed},
		{"blank name after trimming", shopAdminID(), usecase.CreateCakeInput{Name: "   ", Category: "Birthday", Price: decimal.NewFromInt(1), Servings: 1}, domainerrors.ErrValidationFailed},
		{"blank category after trimming", shopAdminID(), usecase.CreateCakeInput{Name: "Plum", Category: "\t", Price: decimal.NewFromInt(1), Servings: 1}, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := createTestCakeService(t, nil)

			_, err := svc.CreateCake(context.Background(), tt.id, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCakeService_UpdateCake(t *testing.T) {
	fx, _, svc := createTestCakeService(t, nil)
	ctx := context.Background()
	owner := shopAdminID()
	cake := ownedCake(owner)
	price := decimal.RequireFromString("520")

	fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	fx.activeShop(owner.SubjectID)
	fx.cakes.EXPECT().Update(ctx, cake).Return(nil)

	got, err := svc.UpdateCake(ctx, owner, cake.ID, usecase.UpdateCakeInput{Price: &price})

	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))
	assert.Equal(t, "Black Forest", got.Name)
}

func TestCakeService_UpdateCake_BlankName(t *testing.T) {
	fx, _, svc := createTestCakeService(t, nil)
	ctx := context.Background()
	owner := shopAdminID()
	cake := ownedCake(owner)
	blank := "  "

	fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	fx.activeShop(owner.SubjectID)

	_, err := svc.UpdateCake(ctx, owner, cake.ID, usecase.UpdateCakeInput{Name: &blank})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCakeService_UpdateCake_DeactivatedDuringUpdate(t *testing.T) {
	owner := shopAdminID()
	price := decimal.RequireFromString("520")

	t.Run("cake deactivated", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)
		deactivated := *cake
		deactivated.Status = entity.StatusInactive

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil).Once()
		fx.activeShop(owner.SubjectID)
		fx.cakes.EXPECT().Update(ctx, cake).Return(repository.ErrCakeNotFound)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(&deactivated, nil).Once()

		_, err := svc.UpdateCake(ctx, owner, cake.ID, usecase.UpdateCakeInput{Price: &price})

		assert.ErrorIs(t, err, domainerrors.ErrCakeInactive)
	})

	t.Run("cake deleted", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil).Once()
		fx.activeShop(owner.SubjectID)
		fx.cakes.EXPECT().Update(ctx, cake).Return(repository.ErrCakeNotFound)
		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(nil, repository.ErrCakeNotFound).Once()

		_, err := svc.UpdateCake(ctx, owner, cake.ID, usecase.UpdateCakeInput{Price: &price})

		assert.ErrorIs(t, err, domainerrors.ErrCakeOwnershipViolation)
	})
}

func TestCakeService_InactiveShopCannotMutate(t *testing.T) {
	owner := shopAdminID()
	inactiveShop := &entity.Shop{ID: uuid.New(), AdminID: &owner.SubjectID, Status: entity.StatusInactive}

	t.Run("create", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()

		fx.shops.EXPECT().FindByAdminID(ctx, owner.SubjectID).Return(inactiveShop, nil)

		_, err := svc.CreateCake(ctx, owner, usecase.CreateCakeInput{Name: "Plum", Category: "Tea", Price: decimal.NewFromInt(10), Servings: 2})

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})

	t.Run("toggle", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
		fx.shops.EXPECT().FindByAdminID(ctx, owner.SubjectID).Return(inactiveShop, nil)

		_, err := svc.ToggleCakeStatus(ctx, owner, cake.ID)

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})

	t.Run("delete without a linked shop", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
		fx.shops.EXPECT().FindByAdminID(ctx, owner.SubjectID).Return(nil, repository.ErrShopNotFound)

		assert.ErrorIs(t, svc.DeleteCake(ctx, owner, cake.ID), domainerrors.ErrAccountInactive)
	})

	t.Run("upload", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()

		fx.shops.EXPECT().FindByAdminID(ctx, owner.SubjectID).Return(inactiveShop, nil)

		_, err := svc.UploadCakeImage(ctx, owner, usecase.UploadImageInput{Data: pngHeader})

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})
}

func TestCakeService_UpdateCake_Ownership(t *testing.T) {
	owner := shopAdminID()

	t.Run("other shop admin", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		_, err := svc.UpdateCake(ctx, shopAdminID(), cake.ID, usecase.UpdateCakeInput{})

		assert.ErrorIs(t, err, domainerrors.ErrCakeOwnershipViolation)
	})

	t.Run("missing cake is forbidden", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		missing := uuid.New()

		fx.cakes.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrCakeNotFound)

		_, err := svc.UpdateCake(ctx, owner, missing, usecase.UpdateCakeInput{})

		assert.ErrorIs(t, err, domainerrors.ErrCakeOwnershipViolation)
	})

	t.Run("inactive cake", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)
		cake.Status = entity.StatusInactive

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		_, err := svc.UpdateCake(ctx, owner, cake.ID, usecase.UpdateCakeInput{})

		assert.ErrorIs(t, err, domainerrors.ErrCakeInactive)
	})
}

func TestCakeService_ToggleCakeStatus(t *testing.T) {
	fx, _, svc := createTestCakeService(t, nil)
	ctx := context.Background()
	owner := shopAdminID()
	cake := ownedCake(owner)
	cake.Status = entity.StatusInactive

	fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
	fx.activeShop(owner.SubjectID)
	fx.cakes.EXPECT().UpdateStatus(ctx, cake.ID, entity.StatusActive).Return(nil)

	got, err := svc.ToggleCakeStatus(ctx, owner, cake.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, got.Status)
}

func TestCakeService_DeleteCake(t *testing.T) {
	owner := shopAdminID()

	t.Run("owner", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)
		fx.activeShop(owner.SubjectID)
		fx.cakes.EXPECT().Delete(ctx, cake.ID).Return(nil)

		require.NoError(t, svc.DeleteCake(ctx, owner, cake.ID))
	})

	t.Run("super admin cannot delete", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		assert.ErrorIs(t, svc.DeleteCake(ctx, superAdminID(), cake.ID), domainerrors.ErrCakeOwnershipViolation)
	})
}

func TestCakeService_GetCake(t *testing.T) {
	owner := shopAdminID()

	t.Run("inactive hidden from customers", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)
		cake.Status = entity.StatusInactive

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		_, err := svc.GetCake(ctx, customerID(), cake.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCakeNotFound)
	})

	t.Run("inactive visible to owner", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)
		cake.Status = entity.StatusInactive

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		got, err := svc.GetCake(ctx, owner, cake.ID)

		require.NoError(t, err)
		assert.Equal(t, cake, got)
	})

	t.Run("suspended shop hidden from customers", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cake := ownedCake(owner)
		cake.ShopSuspended = true

		fx.cakes.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

		_, err := svc.GetCake(ctx, customerID(), cake.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCakeNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		missing := uuid.New()

		fx.cakes.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrCakeNotFound)

		_, err := svc.GetCake(ctx, customerID(), missing)

		assert.ErrorIs(t, err, domainerrors.ErrCakeNotFound)
	})
}

func TestCakeService_GetAllCakes(t *testing.T) {
	inactive := entity.StatusInactive
	active := entity.StatusActive
	query := usecase.CakeQuery{ListQuery: usecase.ListQuery{Page: 1, Limit: 20}, Flavour: "chocolate", Status: &inactive}

	t.Run("shop admin sees own catalog", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		owner := shopAdminID()

		fx.cakes.EXPECT().List(ctx, mock.MatchedBy(func(filter repository.CakeFilter) bool {
			return filter.OwnerID != nil && *filter.OwnerID == owner.SubjectID &&
				filter.Status != nil && *filter.Status == inactive &&
				filter.Flavour == "chocolate"
		})).Return(nil, int64(0), nil)

		_, err := svc.GetAllCakes(ctx, owner, query)

		require.NoError(t, err)
	})

	t.Run("customers see active cakes of every shop", func(t *testing.T) {
		fx, _, svc := createTestCakeService(t, nil)
		ctx := context.Background()
		cakes := []*entity.Cake{ownedCake(shopAdminID())}

		fx.cakes.EXPECT().List(ctx, mock.MatchedBy(func(filter repository.CakeFilter) bool {
			return filter.OwnerID == nil && filter.Status != nil && *filter.Status == active && filter.ListedShopsOnly
		})).Return(cakes, int64(1), nil)

		page, err := svc.GetAllCakes(ctx, customerID(), query)

		require.NoError(t, err)
		assert.Equal(t, cakes, page.Items)
	})
}

func TestCakeService_UploadCakeImage(t *testing.T) {
	owner := shopAdminID()

	t.Run("stores sniffed png", func(t *testing.T) {
		fx, images, svc := createTestCakeService(t, nil)
		ctx := context.Background()

		fx.activeShop(owner.SubjectID)
		images.EXPECT().
			Put(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "cakes/"+owner.SubjectID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", pngHeader).
			Return("https://cdn.test/cakes/x.png", nil)

		url, err := svc.UploadCakeImage(ctx, owner, usecase.UploadImageInput{
			Filename:    "cake.png",
			ContentType: "image/png",
			Data:        pngHeader,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/cakes/x.png", url)
	})

	tests := []struct {
		name  string
		cfg   *config.Config
		input usecase.UploadImageInput
	}{
		{"empty", nil, usecase.UploadImageInput{}},
		{"not an image", nil, usecase.UploadImageInput{Data: []byte("plain text, not a picture")}},
		{"declared type mismatch", nil, usecase.UploadImageInput{ContentType: "image/jpeg", Data: pngHeader}},
		{"too large", &config.Config{Storage: &config.StorageConfig{MaxUploadBytes: 4}}, usecase.UploadImageInput{Data: pngHeader}},
		{"type not allowed", &config.Config{Storage: &config.StorageConfig{AllowedContentTypes: []string{"image/jpeg"}}}, usecase.UploadImageInput{Data: pngHeader}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := createTestCakeService(t, tt.cfg)

			_, err := svc.UploadCakeImage(context.Background(), owner, tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
		})
	}

	t.Run("customers cannot upload", func(t *testing.T) {
		_, _, svc := createTestCakeService(t, nil)

		_, err := svc.UploadCakeImage(context.Background(), customerID(), usecase.UploadImageInput{Data: pngHeader})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
