package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/policy"
	"cakehaven/internal/domain/repository"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.CustomerUsecase {
	return &customerService{
		repos:  repos,
		logger: logger,
	}
}

// CreateCustomer creates the caller's profile. The email is copied from the credential.
func (srv *customerService) CreateCustomer(ctx context.Context, id entity.Identity, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	if err := policy.CustomerProfile(id, policy.ActionCreate, nil); err != nil {
		return nil, err
	}

	credential, err := srv.repos.CredentialRepo().FindByID(ctx, id.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("credential no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	customer := &entity.Customer{
		AuthID:   credential.ID,
		FullName: strings.TrimSpace(input.FullName),
		Email:    credential.Email,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		Status:   entity.StatusActive,
	}
	if err := srv.repos.CustomerRepo().Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerExists) {
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	logs.FromContext(ctx, srv.logger).Info("Customer profile created",
		slog.String("customer_id", customer.ID.String()))

	return customer, nil
}

func (srv *customerService) GetMyProfile(ctx context.Context, id entity.Identity) (*entity.Customer, error) {
	customer, err := srv.repos.CustomerRepo().FindByAuthID(ctx, id.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) GetCustomer(ctx context.Context, id entity.Identity, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.find(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := policy.CustomerProfile(id, policy.ActionRead, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (srv *customerService) UpdateCustomer(ctx context.Context, id entity.Identity, customerID uuid.UUID, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.find(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := policy.CustomerProfile(id, policy.ActionUpdate, customer); err != nil {
		return nil, err
	}

	if input.FullName != nil {
		customer.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}

	if err := srv.repos.CustomerRepo().Update(ctx, customer); err != nil {
		return nil, srv.mapNotFound(err, "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) ToggleCustomerStatus(ctx context.Context, id entity.Identity, customerID uuid.UUID) (*entity.Customer, error) {
	if err := policy.CustomerProfile(id, policy.ActionToggle, nil); err != nil {
		return nil, err
	}

	customer, err := srv.find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Status = customer.Status.Toggled()
	if err := srv.repos.CustomerRepo().Update(ctx, customer); err != nil {
		return nil, srv.mapNotFound(err, "failed to toggle customer status")
	}

	logs.FromContext(ctx, srv.logger).Info("Customer status toggled",
		slog.String("customer_id", customer.ID.String()),
		slog.String("status", string(customer.Status)))

	return customer, nil
}

func (srv *customerService) GetAllCustomers(ctx context.Context, id entity.Identity, query usecase.ListQuery) (*entity.Page[*entity.Customer], error) {
	if err := policy.CustomerProfile(id, policy.ActionList, nil); err != nil {
		return nil, err
	}

	customers, total, err := srv.repos.CustomerRepo().List(ctx, query.Params())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return usecase.NewPage(customers, total, query), nil
}

func (srv *customerService) find(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.repos.CustomerRepo().FindByID(ctx, customerID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) mapNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return domainerrors.ErrCustomerNotFound
	}

	return errors.Wrap(err, message)
}
