package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"cakehaven/config"
	domainerrors "cakehaven/internal/domain/errors"
	"cakehaven/internal/domain/service"
)

// StrengthPolicy describes the password rules enforced before hashing.
type StrengthPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
}

// DefaultStrengthPolicy is used when no policy is configured.
var DefaultStrengthPolicy = StrengthPolicy{
	MinLength:        8,
	MaxLength:        72,
	RequireLowercase: true,
	RequireNumbers:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy StrengthPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := DefaultStrengthPolicy
	if ps := cfg.PasswordStrength; ps != nil {
		policy = StrengthPolicy{
			MinLength:        ps.MinLength,
			MaxLength:        ps.MaxLength,
			RequireUppercase: ps.RequireUppercase,
			RequireLowercase: ps.RequireLowercase,
			RequireNumbers:   ps.RequireNumbers,
			RequireSpecial:   ps.RequireSpecial,
		}
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy builds a hasher with an explicit cost and policy.
// Costs outside bcrypt's range fall back to the default cost.
func NewBcryptHasherWithPolicy(cost int, policy StrengthPolicy) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if policy.MaxLength <= 0 || policy.MaxLength > 72 {
		// bcrypt ignores everything past 72 bytes
		policy.MaxLength = 72
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength returns ErrPasswordStrength with the first failed rule as details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < h.policy.MinLength:
		return strengthError("must be at least %d characters long", h.policy.MinLength)
	case len(password) > h.policy.MaxLength:
		return strengthError("must be at most %d bytes long", h.policy.MaxLength)
	case h.policy.RequireLowercase && !hasRune(password, unicode.IsLower):
		return strengthError("must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return strengthError("must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return strengthError("must contain at least one number")
	case h.policy.RequireSpecial && !hasRune(password, isSpecial):
		return strengthError("must contain at least one special character")
	}

	return nil
}

func strengthError(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + fmt.Sprintf(format, args...))
}

func hasRune(s string, match func(rune) bool) bool {
	return strings.IndexFunc(s, match) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
