package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/repository"
	"cakehaven/internal/domain/service"
	mockRepo "cakehaven/internal/mocks/repository"
	mockService "cakehaven/internal/mocks/service"
	"cakehaven/internal/usecase"
)

type authServiceFixtures struct {
	*repoFixtures
	service  *authService
	revoked  *mockRepo.MockRevokedTokenRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
	composer *mockService.MockMailComposer
	mailer   *mockService.MockMailSender
	config   *config.Config
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repos := newRepoFixtures(t)
	revoked := mockRepo.NewMockRevokedTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	composer := mockService.NewMockMailComposer(t)
	mailer := mockService.NewMockMailSender(t)

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:      time.Hour,
			ResetTokenTTL: 15 * time.Minute,
			ResetURL:      "https://cakehaven.test/reset",
		},
	}

	srv := NewAuthService(repos.txManager, repos.factory, revoked, hasher, tokens, composer, mailer, cfg, discardLogger()).(*authService)
	srv.now = func() time.Time { return fixedNow }

	return authServiceFixtures{
		repoFixtures: repos,
		service:      srv,
		revoked:      revoked,
		hasher:       hasher,
		tokens:       tokens,
		composer:     composer,
		mailer:       mailer,
		config:       cfg,
	}
}

func issued() *service.IssuedToken {
	return &service.IssuedToken{Token: "signed.jwt.value", TokenID: uuid.NewString(), ExpiresAt: fixedNow.Add(time.Hour)}
}

func TestAuthService_Signup_Customer(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("s3cretpass").Return(nil)
	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	fx.expectTx(1)
	fx.credentials.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) {
			credential.ID = uuid.New()
		}).
		Return(nil)
	fx.customers.EXPECT().Create(ctx, mock.MatchedBy(func(customer *entity.Customer) bool {
		return customer.FullName == "Asha Rao" && customer.Email == "asha@example.com" && customer.Status == entity.StatusActive
	})).Return(nil)
	token := issued()
	fx.tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).Return(token, nil)

	out, err := fx.service.Signup(ctx, usecase.SignupInput{
		Email:    " asha@example.com ",
		Password: "s3cretpass",
		Role:     entity.RoleCustomer,
		FullName: "Asha Rao",
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", out.Credential.Email)
	assert.Equal(t, "hashed", out.Credential.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, out.Credential.Role)
	assert.Equal(t, token, out.Token)
}

func TestAuthService_Signup_ShopAdminLinksShop(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Status: entity.StatusActive}
	adminID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTx(1)
	fx.shops.EXPECT().FindActiveByEmail(ctx, "owner@bloom.test").Return(shop, nil)
	fx.credentials.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Credential")).
		Run(func(_ context.Context, credential *entity.Credential) { credential.ID = adminID }).
		Return(nil)
	fx.shops.EXPECT().LinkAdmin(ctx, shop.ID, adminID).Return(nil)
	fx.tokens.EXPECT().Issue(adminID, entity.RoleShopAdmin).Return(issued(), nil)

	out, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "owner@bloom.test", Password: "s3cretpass", Role: entity.RoleShopAdmin})

	require.NoError(t, err)
	assert.Equal(t, adminID, out.Credential.ID)
}

func TestAuthService_Signup_ShopAdminWithoutShop(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTx(1)
	fx.shops.EXPECT().FindActiveByEmail(ctx, "nobody@shop.test").Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "nobody@shop.test", Password: "s3cretpass", Role: entity.RoleShopAdmin})

	assert.ErrorIs(t, err, domainerrors.ErrSignupRoleNotAllowed)
}

func TestAuthService_Signup_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		wantErr error
	}{
		{"super admin", entity.RoleSuperAdmin, domainerrors.ErrSignupRoleNotAllowed},
		{"unknown role", entity.Role("baker"), domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Signup(context.Background(), usecase.SignupInput{Email: "x@y.z", Password: "s3cretpass", Role: tt.role})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTx(1)
	fx.credentials.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrCredentialExists)

	_, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "taken@example.com", Password: "s3cretpass", Role: entity.RoleCustomer})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.Signup(context.Background(), usecase.SignupInput{Email: "a@b.c", Password: "short", Role: entity.RoleCustomer})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Signin(t *testing.T) {
	credential := &entity.Credential{ID: uuid.New(), Email: "asha@example.com", PasswordHash: "hashed", Role: entity.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		token := issued()

		fx.credentials.EXPECT().FindByEmail(ctx, "asha@example.com").Return(credential, nil)
		fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
		fx.activeCustomer(credential.ID)
		fx.tokens.EXPECT().Issue(credential.ID, entity.RoleCustomer).Return(token, nil)

		out, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "asha@example.com", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, credential, out.Credential)
		assert.Equal(t, token, out.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().FindByEmail(ctx, "asha@example.com").Return(credential, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "asha@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

		_, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "ghost@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("deactivated customer", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().FindByEmail(ctx, "asha@example.com").Return(credential, nil)
		fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
		fx.customers.EXPECT().FindByAuthID(ctx, credential.ID).Return(&entity.Customer{AuthID: credential.ID, Status: entity.StatusInactive}, nil)

		_, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "asha@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})

	t.Run("shop admin of a deactivated shop", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		admin := &entity.Credential{ID: uuid.New(), Email: "shop@example.com", PasswordHash: "hashed", Role: entity.RoleShopAdmin}

		fx.credentials.EXPECT().FindByEmail(ctx, "shop@example.com").Return(admin, nil)
		fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
		fx.shops.EXPECT().FindByAdminID(ctx, admin.ID).Return(&entity.Shop{AdminID: &admin.ID, Status: entity.StatusInactive}, nil)

		_, err := fx.service.Signin(ctx, usecase.SigninInput{Email: "shop@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := customerID()

	fx.revoked.EXPECT().Revoke(ctx, &entity.RevokedToken{
		TokenID:   id.TokenID,
		SubjectID: id.SubjectID,
		ExpiresAt: id.ExpiresAt,
	}).Return(nil)
	fx.revoked.EXPECT().PurgeExpired(ctx, fixedNow).Return(int64(3), nil)

	require.NoError(t, fx.service.Logout(ctx, id))
}

func TestAuthService_Logout_PurgeFailureIsIgnored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.revoked.EXPECT().Revoke(ctx, mock.Anything).Return(nil)
	fx.revoked.EXPECT().PurgeExpired(ctx, fixedNow).Return(int64(0), assert.AnError)

	assert.NoError(t, fx.service.Logout(ctx, customerID()))
}

func TestAuthService_Logout_WithoutTokenID(t *testing.T) {
	fx := createTestAuthService(t)
	id := customerID()
	id.TokenID = ""

	assert.ErrorIs(t, fx.service.Logout(context.Background(), id), domainerrors.ErrInvalidToken)
}

func TestAuthService_Authenticate(t *testing.T) {
	claims := &service.Claims{
		SubjectID: uuid.New(),
		Role:      entity.RoleShopAdmin,
		Type:      service.TokenTypeAccess,
		TokenID:   "jti-1",
		ExpiresAt: fixedNow.Add(time.Hour),
	}

	t.Run("valid", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().Verify("tok").Return(claims, nil)
		fx.revoked.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)

		id, err := fx.service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, claims.SubjectID, id.SubjectID)
		assert.Equal(t, entity.RoleShopAdmin, id.Role)
		assert.Equal(t, "jti-1", id.TokenID)
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().Verify("tok").Return(claims, nil)
		fx.revoked.EXPECT().IsRevoked(ctx, "jti-1").Return(true, nil)

		_, err := fx.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("invalid", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokens.EXPECT().Verify("bad").Return(nil, domainerrors.ErrInvalidToken)

		_, err := fx.service.Authenticate(context.Background(), "bad")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("revocation lookup fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().Verify("tok").Return(claims, nil)
		fx.revoked.EXPECT().IsRevoked(ctx, "jti-1").Return(false, assert.AnError)

		_, err := fx.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	credential := &entity.Credential{ID: uuid.New(), Email: "asha@example.com", Role: entity.RoleCustomer}

	t.Run("sends reset link", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		mail := &service.Mail{To: credential.Email, Subject: "Reset"}

		fx.credentials.EXPECT().FindByEmail(ctx, credential.Email).Return(credential, nil)
		fx.tokens.EXPECT().IssueReset(credential.ID).Return(&service.IssuedToken{Token: "reset+tok"}, nil)
		fx.composer.EXPECT().
			PasswordReset(credential.Email, "https://cakehaven.test/reset?token=reset%2Btok", 15*time.Minute).
			Return(mail, nil)
		fx.mailer.EXPECT().Send(ctx, mail).Return(nil)

		require.NoError(t, fx.service.ForgotPassword(ctx, credential.Email))
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

		assert.NoError(t, fx.service.ForgotPassword(ctx, "ghost@example.com"))
	})

	t.Run("mail failure is not reported", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.credentials.EXPECT().FindByEmail(ctx, credential.Email).Return(credential, nil)
		fx.tokens.EXPECT().IssueReset(credential.ID).Return(&service.IssuedToken{Token: "tok"}, nil)
		fx.composer.EXPECT().PasswordReset(mock.Anything, mock.Anything, mock.Anything).Return(&service.Mail{}, nil)
		fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(assert.AnError)

		assert.NoError(t, fx.service.ForgotPassword(ctx, credential.Email))
	})
}

func TestAuthService_ResetLinkKeepsExistingQuery(t *testing.T) {
	fx := createTestAuthService(t)
	fx.config.Auth.ResetURL = "https://cakehaven.test/reset?lang=en"

	link := fx.service.resetLink("abc")

	assert.True(t, strings.HasSuffix(link, "?lang=en&token=abc"))
}

func TestAuthService_ResetPassword(t *testing.T) {
	claims := &service.Claims{SubjectID: uuid.New(), Type: service.TokenTypeReset, TokenID: "reset-jti", ExpiresAt: fixedNow.Add(15 * time.Minute)}
	consumed := &entity.RevokedToken{
		TokenID:   "reset-jti",
		SubjectID: claims.SubjectID,
		ExpiresAt: claims.ExpiresAt,
	}

	t.Run("success consumes token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().VerifyReset("tok").Return(claims, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("n3wpassword").Return(nil)
		fx.hasher.EXPECT().Hash("n3wpassword").Return("new-hash", nil)
		fx.expectTx(1)
		fx.revocations.EXPECT().Consume(ctx, consumed).Return(nil)
		fx.credentials.EXPECT().UpdatePassword(ctx, claims.SubjectID, "new-hash").Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "tok", Password: "n3wpassword"}))
	})

	t.Run("used token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().VerifyReset("tok").Return(claims, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("n3wpassword").Return(nil)
		fx.hasher.EXPECT().Hash("n3wpassword").Return("new-hash", nil)
		fx.expectTx(1)
		fx.revocations.EXPECT().Consume(ctx, consumed).Return(repository.ErrTokenConsumed)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "tok", Password: "n3wpassword"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		fx.credentials.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent resets update the password once", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().VerifyReset("tok").Return(claims, nil).Times(2)
		fx.hasher.EXPECT().ValidatePasswordStrength("n3wpassword").Return(nil).Times(2)
		fx.hasher.EXPECT().Hash("n3wpassword").Return("new-hash", nil).Times(2)
		fx.expectTx(2)
		fx.revocations.EXPECT().Consume(ctx, consumed).Return(nil).Once()
		fx.revocations.EXPECT().Consume(ctx, consumed).Return(repository.ErrTokenConsumed).Once()
		fx.credentials.EXPECT().UpdatePassword(ctx, claims.SubjectID, "new-hash").Return(nil).Once()

		first := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "tok", Password: "n3wpassword"})
		second := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "tok", Password: "n3wpassword"})

		require.NoError(t, first)
		assert.ErrorIs(t, second, domainerrors.ErrInvalidToken)
	})

	t.Run("deleted credential", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().VerifyReset("tok").Return(claims, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("n3wpassword").Return(nil)
		fx.hasher.EXPECT().Hash("n3wpassword").Return("new-hash", nil)
		fx.expectTx(1)
		fx.revocations.EXPECT().Consume(ctx, consumed).Return(nil)
		fx.credentials.EXPECT().UpdatePassword(ctx, claims.SubjectID, "new-hash").Return(repository.ErrCredentialNotFound)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "tok", Password: "n3wpassword"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("access token rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokens.EXPECT().VerifyReset("access").Return(nil, domainerrors.ErrInvalidToken)

		err := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "access", Password: "n3wpassword"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestAuthService_Me(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := customerID()
	credential := &entity.Credential{ID: id.SubjectID, Email: "asha@example.com", Role: entity.RoleCustomer}

	fx.credentials.EXPECT().FindByID(ctx, id.SubjectID).Return(credential, nil)

	got, err := fx.service.Me(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, credential, got)
}

func TestAuthService_BootstrapSuperAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.config.Bootstrap = &config.BootstrapConfig{}
		fx.config.Bootstrap.SuperAdmin.Email = "root@cakehaven.test"
		fx.config.Bootstrap.SuperAdmin.Password = "r00tpassword"

		fx.credentials.EXPECT().FindByEmail(ctx, "root@cakehaven.test").Return(nil, repository.ErrCredentialNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength("r00tpassword").Return(nil)
		fx.hasher.EXPECT().Hash("r00tpassword").Return("root-hash", nil)
		fx.credentials.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Role == entity.RoleSuperAdmin && c.PasswordHash == "root-hash"
		})).Return(nil)

		require.NoError(t, fx.service.BootstrapSuperAdmin(ctx))
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.config.Bootstrap = &config.BootstrapConfig{}
		fx.config.Bootstrap.SuperAdmin.Email = "root@cakehaven.test"

		fx.credentials.EXPECT().FindByEmail(ctx, "root@cakehaven.test").
			Return(&entity.Credential{Role: entity.RoleSuperAdmin}, nil)

		require.NoError(t, fx.service.BootstrapSuperAdmin(ctx))
	})

	t.Run("not configured", func(t *testing.T) {
		fx := createTestAuthService(t)

		require.NoError(t, fx.service.BootstrapSuperAdmin(context.Background()))
	})
}
