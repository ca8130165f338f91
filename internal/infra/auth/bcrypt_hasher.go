// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"innkeep/config"
	"innkeep/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	minLength := 8
	// bcrypt silently truncates beyond 72 bytes, so reject longer input.
	maxLength := 72
	if cfg.PasswordStrength != nil {
		if cfg.PasswordStrength.MinLength > 0 {
			minLength = cfg.PasswordStrength.MinLength
		}
		if cfg.PasswordStrength.MaxLength > 0 {
			maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return &bcryptHasher{
		cost:      cost,
		minLength: minLength,
		maxLength: maxLength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength enforces the configured password policy.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if len(password) < h.minLength {
		return errors.Errorf("password must be at least %d characters long", h.minLength)
	}
	if len(password) > h.maxLength {
		return errors.Errorf("password must be at most %d characters long", h.maxLength)
	}
	if !hasLetter(password) {
		return errors.New("password must contain at least one letter")
	}
	if !hasNumber(password) {
		return errors.New("password must contain at least one number")
	}

	return nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			return true
		}
	}

	return false
}
