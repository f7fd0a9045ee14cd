// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
	"cakehaven/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	revoked   repository.RevokedTokenRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	composer  service.MailComposer
	mailer    service.MailSender
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	repos repository.RepositoryFactory,
	revoked repository.RevokedTokenRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	composer service.MailComposer,
	mailer service.MailSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		repos:     repos,
		revoked:   revoked,
		hasher:    hasher,
		tokens:    tokens,
		composer:  composer,
		mailer:    mailer,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Signup registers a credential. Customers may always sign up; shop admins only
// with the email of an approved active shop, which gets linked to the new credential.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	logger := logs.FromContext(ctx, srv.logger)
	logger.Info("Signing up", slog.String("role", input.Role.String()))

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be customer or shop_admin")
	}
	if input.Role == entity.RoleSuperAdmin {
		return nil, domainerrors.ErrSignupRoleNotAllowed.WithDetails("super_admin cannot sign up")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	credential := &entity.Credential{
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Role:         input.Role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var shop *entity.Shop
		if input.Role == entity.RoleShopAdmin {
			found, err := repoFactory.ShopRepo().FindActiveByEmail(ctx, credential.Email)
			if err != nil {
				if errors.Is(err, repository.ErrShopNotFound) {
					return domainerrors.ErrSignupRoleNotAllowed.WithDetails("no approved shop is registered with this email")
				}

				return errors.Wrap(err, "failed to find shop by email")
			}
			shop = found
		}

		if err := repoFactory.CredentialRepo().Create(ctx, credential); err != nil {
			if errors.Is(err, repository.ErrCredentialExists) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create credential")
		}

		if shop != nil {
			if err := repoFactory.ShopRepo().LinkAdmin(ctx, shop.ID, credential.ID); err != nil {
				return errors.Wrap(err, "failed to link shop admin")
			}
		}

		if input.Role == entity.RoleCustomer && strings.TrimSpace(input.FullName) != "" {
			customer := &entity.Customer{
				AuthID:   credential.ID,
				FullName: strings.TrimSpace(input.FullName),
				Email:    credential.Email,
				Status:   entity.StatusActive,
			}
			if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to create customer profile")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "signup failed")
	}

	token, err := srv.tokens.Issue(credential.ID, credential.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	logger.Info("Credential registered",
		slog.String("credential_id", credential.ID.String()),
		slog.String("role", credential.Role.String()))

	return &usecase.AuthOutput{Credential: credential, Token: token}, nil
}

// Signin verifies the email and password. Unknown emails and wrong passwords are indistinguishable.
func (srv *authService) Signin(ctx context.Context, input usecase.SigninInput) (*usecase.AuthOutput, error) {
	credential, err := srv.repos.CredentialRepo().FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err := requireActiveAccount(ctx, srv.repos, entity.Identity{SubjectID: credential.ID, Role: credential.Role}); err != nil {
		return nil, err
	}

	token, err := srv.tokens.Issue(credential.ID, credential.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	logs.FromContext(ctx, srv.logger).Info("Signed in",
		slog.String("credential_id", credential.ID.String()),
		slog.String("role", credential.Role.String()))

	return &usecase.AuthOutput{Credential: credential, Token: token}, nil
}

// Logout revokes the token id and purges revocations that have expired.
func (srv *authService) Logout(ctx context.Context, id entity.Identity) error {
	if id.TokenID == "" {
		return domainerrors.ErrInvalidToken.WithDetails("token has no id")
	}

	err := srv.revoked.Revoke(ctx, &entity.RevokedToken{
		TokenID:   id.TokenID,
		SubjectID: id.SubjectID,
		ExpiresAt: id.ExpiresAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	logger := logs.FromContext(ctx, srv.logger)
	purged, err := srv.revoked.PurgeExpired(ctx, srv.now())
	if err != nil {
		logger.Warn("Failed to purge expired revocations", slog.Any("error", err))
	} else if purged > 0 {
		logger.Debug("Purged expired revocations", slog.Int64("count", purged))
	}

	return nil
}

func (srv *authService) Me(ctx context.Context, id entity.Identity) (*entity.Credential, error) {
	credential, err := srv.repos.CredentialRepo().FindByID(ctx, id.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("credential no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return credential, nil
}

// ForgotPassword sends a reset link. Mail failures are logged and not reported.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	logger := logs.FromContext(ctx, srv.logger)

	credential, err := srv.repos.CredentialRepo().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			logger.Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find credential")
	}

	token, err := srv.tokens.IssueReset(credential.ID)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	mail, err := srv.composer.PasswordReset(credential.Email, srv.resetLink(token.Token), srv.config.Auth.ResetTokenTTL)
	if err != nil {
		logger.Error("Failed to render password reset mail", slog.Any("error", err))

		return nil
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		logger.Error("Failed to send password reset mail",
			slog.String("credential_id", credential.ID.String()),
			slog.Any("error", err))
	}

	return nil
}

func (srv *authService) resetLink(token string) string {
	base := srv.config.Auth.ResetURL
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	return base + sep + "token=" + url.QueryEscape(token)
}

// ResetPassword sets a new password. Each reset token works once: the token id is
// claimed in the same transaction as the password update.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokens.VerifyReset(input.Token)
	if err != nil {
		return err
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.RevokedTokenRepo().Consume(ctx, &entity.RevokedToken{
			TokenID:   claims.TokenID,
			SubjectID: claims.SubjectID,
			ExpiresAt: claims.ExpiresAt,
		})
		if err != nil {
			if errors.Is(err, repository.ErrTokenConsumed) {
				return domainerrors.ErrInvalidToken.WithDetails("reset token already used")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := repoFactory.CredentialRepo().UpdatePassword(ctx, claims.SubjectID, hash); err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrInvalidToken.WithDetails("credential no longer exists")
			}

			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "password reset failed")
	}

	logs.FromContext(ctx, srv.logger).Info("Password reset",
		slog.String("credential_id", claims.SubjectID.String()))

	return nil
}

func (srv *authService) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	claims, err := srv.tokens.Verify(token)
	if err != nil {
		return entity.Identity{}, err
	}

	revoked, err := srv.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return entity.Identity{}, domainerrors.ErrInvalidToken.WithDetails("token has been revoked")
	}

	return claims.Identity(), nil
}

// BootstrapSuperAdmin is idempotent. An existing credential with the configured email is left untouched.
func (srv *authService) BootstrapSuperAdmin(ctx context.Context) error {
	if srv.config.Bootstrap == nil || srv.config.Bootstrap.SuperAdmin.Email == "" {
		srv.logger.Debug("No super admin configured for bootstrap")

		return nil
	}
	admin := srv.config.Bootstrap.SuperAdmin

	existing, err := srv.repos.CredentialRepo().FindByEmail(ctx, admin.Email)
	if err == nil {
		if existing.Role != entity.RoleSuperAdmin {
			srv.logger.Warn("Bootstrap email belongs to a non super admin credential",
				slog.String("role", existing.Role.String()))
		}

		return nil
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return errors.Wrap(err, "failed to look up super admin")
	}

	if err := srv.hasher.ValidatePasswordStrength(admin.Password); err != nil {
		return errors.Wrap(err, "bootstrap super admin password")
	}
	hash, err := srv.hasher.Hash(admin.Password)
	if err != nil {
		return err
	}

	credential := &entity.Credential{
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
	}
	if err := srv.repos.CredentialRepo().Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrCredentialExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create super admin")
	}

	srv.logger.Info("Super admin bootstrapped", slog.String("credential_id", credential.ID.String()))

	return nil
}
