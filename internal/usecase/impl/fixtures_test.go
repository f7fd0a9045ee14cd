package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/repository"
	mockRepo "cakehaven/internal/mocks/repository"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoFixtures wires one mock per repository behind a mock factory.
type repoFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	credentials *mockRepo.MockCredentialRepository
	customers   *mockRepo.MockCustomerRepository
	shops       *mockRepo.MockShopRepository
	enquiries   *mockRepo.MockEnquiryRepository
	cakes       *mockRepo.MockCakeRepository
	cart        *mockRepo.MockCartRepository
	orders      *mockRepo.MockOrderRepository
	revocations *mockRepo.MockRevokedTokenRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	f := &repoFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		credentials: mockRepo.NewMockCredentialRepository(t),
		customers:   mockRepo.NewMockCustomerRepository(t),
		shops:       mockRepo.NewMockShopRepository(t),
		enquiries:   mockRepo.NewMockEnquiryRepository(t),
		cakes:       mockRepo.NewMockCakeRepository(t),
		cart:        mockRepo.NewMockCartRepository(t),
		orders:      mockRepo.NewMockOrderRepository(t),
		revocations: mockRepo.NewMockRevokedTokenRepository(t),
	}

	f.factory.EXPECT().CredentialRepo().Return(f.credentials).Maybe()
	f.factory.EXPECT().CustomerRepo().Return(f.customers).Maybe()
	f.factory.EXPECT().ShopRepo().Return(f.shops).Maybe()
	f.factory.EXPECT().EnquiryRepo().Return(f.enquiries).Maybe()
	f.factory.EXPECT().CakeRepo().Return(f.cakes).Maybe()
	f.factory.EXPECT().CartRepo().Return(f.cart).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orders).Maybe()
	f.factory.EXPECT().RevokedTokenRepo().Return(f.revocations).Maybe()

	return f
}

// expectTx runs the transaction body against the same mock factory.
func (f *repoFixtures) expectTx(times int) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Times(times)
}

// activeShop lets the shop admin pass the account status check.
func (f *repoFixtures) activeShop(adminID uuid.UUID) {
	f.shops.EXPECT().FindByAdminID(mock.Anything, adminID).Return(&entity.Shop{ID: uuid.New(), AdminID: &adminID, Status: entity.StatusActive}, nil)
}

// activeCustomer lets the customer pass the account status check.
func (f *repoFixtures) activeCustomer(authID uuid.UUID) {
	f.customers.EXPECT().FindByAuthID(mock.Anything, authID).Return(&entity.Customer{ID: uuid.New(), AuthID: authID, Status: entity.StatusActive}, nil)
}

func customerID() entity.Identity {
	return entity.Identity{SubjectID: uuid.New(), Role: entity.RoleCustomer, TokenID: uuid.NewString(), ExpiresAt: fixedNow.Add(time.Hour)}
}

func shopAdminID() entity.Identity {
	return entity.Identity{SubjectID: uuid.New(), Role: entity.RoleShopAdmin, TokenID: uuid.NewString(), ExpiresAt: fixedNow.Add(time.Hour)}
}

func superAdminID() entity.Identity {
	return entity.Identity{SubjectID: uuid.New(), Role: entity.RoleSuperAdmin, TokenID: uuid.NewString(), ExpiresAt: fixedNow.Add(time.Hour)}
}
