package usecase

import (
	"context"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/service"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a credential.
type SignupInput struct {
	Email    string
	Password string
	Role     entity.Role
	// FullName creates the customer profile right away when set.
	FullName string
}

// SigninInput defines the data required to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries a reset token and the new password.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the credential and its freshly issued access token.
type AuthOutput struct {
	Credential *entity.Credential
	Token      *service.IssuedToken
}

// AuthUsecase defines credential and session operations.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Signin(ctx context.Context, input SigninInput) (*AuthOutput, error)
	// Logout revokes the caller's token id until it expires.
	Logout(ctx context.Context, id entity.Identity) error
	Me(ctx context.Context, id entity.Identity) (*entity.Credential, error)
	// ForgotPassword mails a reset link when the email is registered. Unknown emails are not reported.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	// Authenticate verifies an access token and rejects revoked ones.
	Authenticate(ctx context.Context, token string) (entity.Identity, error)
	// BootstrapSuperAdmin creates the configured super admin if missing.
	BootstrapSuperAdmin(ctx context.Context) error
}
