package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/policy"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

// enquiryService implements the EnquiryUsecase interface.
type enquiryService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	composer  service.MailComposer
	mailer    service.MailSender
	logger    *slog.Logger
	now       func() time.Time
}

// NewEnquiryService is the constructor for enquiryService.
func NewEnquiryService(
	txManager repository.TransactionManager,
	repos repository.RepositoryFactory,
	composer service.MailComposer,
	mailer service.MailSender,
	logger *slog.Logger,
) usecase.EnquiryUsecase {
	return &enquiryService{
		txManager: txManager,
		repos:     repos,
		composer:  composer,
		mailer:    mailer,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateEnquiry records a public shop application as pending.
func (srv *enquiryService) CreateEnquiry(ctx context.Context, input entity.ShopDetails) (*entity.Enquiry, error) {
	enquiry := &entity.Enquiry{
		ShopDetails: entity.ShopDetails{
			ShopName:  strings.TrimSpace(input.ShopName),
			OwnerName: strings.TrimSpace(input.OwnerName),
			Email:     strings.ToLower(strings.TrimSpace(input.Email)),
			Phone:     strings.TrimSpace(input.Phone),
			Address:   strings.TrimSpace(input.Address),
			City:      strings.TrimSpace(input.City),
		},
		Status: entity.EnquiryPending,
	}

	if err := srv.repos.EnquiryRepo().Create(ctx, enquiry); err != nil {
		return nil, errors.Wrap(err, "failed to create enquiry")
	}

	logs.FromContext(ctx, srv.logger).Info("Enquiry submitted",
		slog.String("enquiry_id", enquiry.ID.String()),
		slog.String("city", enquiry.City))

	return enquiry, nil
}

func (srv *enquiryService) GetEnquiries(ctx context.Context, id entity.Identity, query usecase.EnquiryQuery) (*entity.Page[*entity.Enquiry], error) {
	if err := policy.Enquiry(id, policy.ActionList); err != nil {
		return nil, err
	}

	enquiries, total, err := srv.repos.EnquiryRepo().List(ctx, repository.EnquiryFilter{
		ListParams: query.Params(),
		Status:     query.Status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	return usecase.NewPage(enquiries, total, query.ListQuery), nil
}

func (srv *enquiryService) GetEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID) (*entity.Enquiry, error) {
	if err := policy.Enquiry(id, policy.ActionRead); err != nil {
		return nil, err
	}

	enquiry, err := srv.repos.EnquiryRepo().FindByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return nil, domainerrors.ErrEnquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find enquiry")
	}

	return enquiry, nil
}

// ApproveEnquiry moves the enquiry to approved and creates its shop. Both writes
// commit together or not at all. A shop_admin already registered with the shop
// email becomes the shop's admin.
func (srv *enquiryService) ApproveEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID) (*usecase.ApproveEnquiryOutput, error) {
	if err := policy.Enquiry(id, policy.ActionDecide); err != nil {
		return nil, err
	}

	var output usecase.ApproveEnquiryOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enquiry, err := srv.decide(ctx, repoFactory, enquiryID, entity.EnquiryDecision{
			Status:    entity.EnquiryApproved,
			DecidedBy: id.SubjectID,
			DecidedAt: srv.now(),
		})
		if err != nil {
			return err
		}

		shop := &entity.Shop{
			ShopDetails: enquiry.ShopDetails,
			Status:      entity.StatusActive,
			EnquiryID:   enquiry.ID,
		}

		admin, err := repoFactory.CredentialRepo().FindByEmail(ctx, enquiry.Email)
		switch {
		case err == nil:
			if admin.Role == entity.RoleShopAdmin {
				shop.AdminID = &admin.ID
			}
		case errors.Is(err, repository.ErrCredentialNotFound):
		default:
			return errors.Wrap(err, "failed to look up shop admin")
		}

		if err := repoFactory.ShopRepo().Create(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrShopExists) {
				return domainerrors.ErrEnquiryAlreadyProcessed.WithDetails("a shop already exists for this enquiry")
			}

			return errors.Wrap(err, "failed to create shop")
		}

		output.Enquiry = enquiry
		output.Shop = shop

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to approve enquiry")
	}

	logs.FromContext(ctx, srv.logger).Info("Enquiry approved",
		slog.String("enquiry_id", output.Enquiry.ID.String()),
		slog.String("shop_id", output.Shop.ID.String()))
	srv.notify(ctx, output.Enquiry)

	return &output, nil
}

// RejectEnquiry moves the enquiry to rejected with an optional reason.
func (srv *enquiryService) RejectEnquiry(ctx context.Context, id entity.Identity, enquiryID uuid.UUID, reason *string) (*entity.Enquiry, error) {
	if err := policy.Enquiry(id, policy.ActionDecide); err != nil {
		return nil, err
	}

	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		reason = &trimmed
		if trimmed == "" {
			reason = nil
		}
	}

	var enquiry *entity.Enquiry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		decided, err := srv.decide(ctx, repoFactory, enquiryID, entity.EnquiryDecision{
			Status:    entity.EnquiryRejected,
			Reason:    reason,
			DecidedBy: id.SubjectID,
			DecidedAt: srv.now(),
		})
		if err != nil {
			return err
		}
		enquiry = decided

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reject enquiry")
	}

	logs.FromContext(ctx, srv.logger).Info("Enquiry rejected", slog.String("enquiry_id", enquiry.ID.String()))
	srv.notify(ctx, enquiry)

	return enquiry, nil
}

// decide applies the decision and returns the updated enquiry. When nothing was
// pending it tells a missing enquiry apart from an already decided one.
func (srv *enquiryService) decide(ctx context.Context, repoFactory repository.RepositoryFactory, enquiryID uuid.UUID, decision entity.EnquiryDecision) (*entity.Enquiry, error) {
	enquiryRepo := repoFactory.EnquiryRepo()

	decideErr := enquiryRepo.Decide(ctx, enquiryID, decision)
	if decideErr != nil && !errors.Is(decideErr, repository.ErrEnquiryNotPending) {
		return nil, errors.Wrap(decideErr, "failed to decide enquiry")
	}

	enquiry, err := enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return nil, domainerrors.ErrEnquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find enquiry")
	}

	if decideErr != nil {
		return nil, domainerrors.ErrEnquiryAlreadyProcessed.WithDetails("enquiry is already " + string(enquiry.Status))
	}

	return enquiry, nil
}

// notify emails the decision. Failures are logged only.
func (srv *enquiryService) notify(ctx context.Context, enquiry *entity.Enquiry) {
	logger := logs.FromContext(ctx, srv.logger)

	mail, err := srv.composer.EnquiryDecision(enquiry)
	if err != nil {
		logger.Error("Failed to render enquiry decision mail",
			slog.String("enquiry_id", enquiry.ID.String()),
			slog.Any("error", err))

		return
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		logger.Error("Failed to send enquiry decision mail",
			slog.String("enquiry_id", enquiry.ID.String()),
			slog.Any("error", err))
	}
}
