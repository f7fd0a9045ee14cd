package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakehaven/config"
	"cakehaven/internal/domain/entity"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/service"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:      time.Hour,
			ResetTokenTTL: 15 * time.Minute,
		},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	subjectID := uuid.New()
	issued, err := tokens.Issue(subjectID, entity.RoleShopAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := tokens.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, entity.RoleShopAdmin, claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, issued.TokenID, claims.TokenID)

	id := claims.Identity()
	assert.Equal(t, subjectID, id.SubjectID)
	assert.True(t, id.Is(entity.RoleShopAdmin))
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	subjectID := uuid.New()
	first, err := tokens.Issue(subjectID, entity.RoleCustomer)
	require.NoError(t, err)
	second, err := tokens.Issue(subjectID, entity.RoleCustomer)
	require.NoError(t, err)

	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestJWTService_IssueRejectsUnknownRole(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	_, err = tokens.Issue(uuid.New(), entity.Role("baker"))
	assert.Error(t, err)
}

func TestJWTService_VerifyRejects(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	otherService, err := NewJWTService(newTestConfig("another_secret_key_that_is_long_enough"))
	require.NoError(t, err)
	foreign, err := otherService.Issue(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	reset, err := tokens.IssueReset(uuid.New())
	require.NoError(t, err)

	expiredService := tokens.(*jwtService)
	expiredService.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredService.Issue(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)
	expiredService.now = time.Now

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "super_admin",
		"typ":  service.TokenTypeAccess,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "baker",
		"typ":  service.TokenTypeAccess,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "customer",
		"typ":  service.TokenTypeAccess,
		"jti":  uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "clearly-not-a-jwt-token-format"},
		{"empty", ""},
		{"foreign signature", foreign.Token},
		{"reset token used as access", reset.Token},
		{"expired", expired.Token},
		{"alg none", noneToken},
		{"unknown role", badRole},
		{"missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTService_ResetTokens(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	subjectID := uuid.New()
	reset, err := tokens.IssueReset(subjectID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), reset.ExpiresAt, 5*time.Second)

	claims, err := tokens.VerifyReset(reset.Token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, service.TokenTypeReset, claims.Type)

	access, err := tokens.Issue(subjectID, entity.RoleCustomer)
	require.NoError(t, err)
	_, err = tokens.VerifyReset(access.Token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, tokens)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTLs(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, tokens.AccessTTL())
}
