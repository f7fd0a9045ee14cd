// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/service"
)

// tokenClaims is the JWT payload. Role is omitted on reset tokens.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte        // Secret key for signing HS256 tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	resetTTL  time.Duration // Time-to-live for password reset tokens.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL, resetTTL := time.Hour, 15*time.Minute
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			accessTTL = cfg.Auth.TokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
		now:       time.Now,
	}, nil
}

// Issue creates an access token binding the subject and role.
func (s *jwtService) Issue(subjectID uuid.UUID, role entity.Role) (*service.IssuedToken, error) {
	if !role.IsValid() {
		return nil, errors.Errorf("cannot issue token for role %q", role)
	}

	return s.sign(subjectID, role.String(), service.TokenTypeAccess, s.accessTTL)
}

// Verify checks an access token and returns its claims.
func (s *jwtService) Verify(token string) (*service.Claims, error) {
	claims, err := s.parse(token, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	if !claims.Role.IsValid() {
		return nil, domainerrors.ErrInvalidToken.WithDetails("unknown role")
	}

	return claims, nil
}

// IssueReset creates a password reset token for the subject.
func (s *jwtService) IssueReset(subjectID uuid.UUID) (*service.IssuedToken, error) {
	return s.sign(subjectID, "", service.TokenTypeReset, s.resetTTL)
}

// VerifyReset checks a password reset token and returns its claims.
func (s *jwtService) VerifyReset(token string) (*service.Claims, error) {
	return s.parse(token, service.TokenTypeReset)
}

// AccessTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) sign(subjectID uuid.UUID, role, tokenType string, ttl time.Duration) (*service.IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	tokenID := uuid.NewString()

	claims := tokenClaims{
		Role: role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *jwtService) parse(token, wantType string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken.WithDetails("malformed claims")
	}
	if claims.Type != wantType {
		return nil, domainerrors.ErrInvalidToken.WithDetails("unexpected token type")
	}
	if claims.ID == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("missing token id")
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("malformed subject")
	}

	result := &service.Claims{
		SubjectID: subjectID,
		Role:      entity.Role(claims.Role),
		Type:      claims.Type,
		TokenID:   claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
