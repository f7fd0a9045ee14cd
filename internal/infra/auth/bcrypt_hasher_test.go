package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cakehaven/config"
	domainerrors "cakehaven/internal/domain/errors"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, DefaultStrengthPolicy)
	password := "sweetbloom42"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("sweetbloom43", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("sweetbloom42")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(99, DefaultStrengthPolicy).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, StrengthPolicy{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	validPasswords := []string{
		"StrongPass123!",
		"Complex#Secret9",
		"Pässphräse123!",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "must be at least 8 characters long"},
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

			appErr, ok := err.(domainerrors.AppError)
			require.True(t, ok)
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_MaxLengthCappedAtBcryptLimit(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, StrengthPolicy{MinLength: 1, MaxLength: 500})

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	err := hasher.ValidatePasswordStrength(string(long))
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}
