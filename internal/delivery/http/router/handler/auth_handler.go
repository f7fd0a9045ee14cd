package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/delivery/http/response"
	"cakehaven/internal/domain/entity"
	"cakehaven/internal/usecase"
)

type signupRequest struct {
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required"`
	FullName string      `json:"full_name" validate:"max=100"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for credential handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cookie config.CookieConfig
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cookie: cfg.HTTP.Cookie,
		logger: logger,
	}
}

// Signup registers a customer or a shop admin and signs them in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output.Token.Token, output.Token.ExpiresAt)

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Signed up successfully")
}

// Signin returns a token in the body and sets it as a cookie.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Signin(c.Request().Context(), usecase.SigninInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output.Token.Token, output.Token.ExpiresAt)

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Signed in successfully")
}

// Logout revokes the current token and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	h.expireTokenCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// Me returns the authenticated credential.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	credential, err := h.uc.Me(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCredentialResponse(credential), "")
}

// ForgotPassword always answers the same way so it does not reveal which emails are registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the email is registered, a reset link has been sent")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{Token: req.Token, Password: req.Password}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been reset")
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		Secure:   h.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) expireTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   h.cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
