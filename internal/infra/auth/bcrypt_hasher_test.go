package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"innkeep/config"
)

func testHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 8,
			MaxLength: 72,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := testHasher()

	password := "sunnyside8"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashUsesConfiguredCost(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("sunnyside8")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := testHasher()
	password := "sunnyside8"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("moonlight9", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := testHasher()

	validPasswords := []string{
		"sunnyside8",
		"Pässphräse123",
		"a1b2c3d4",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidateStrength(password), "expected valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "at least 8 characters"},
		{"ab1", "at least 8 characters"},
		{"12345678", "at least one letter"},
		{"abcdefgh", "at least one number"},
		{string(make([]byte, 100)) + "a1", "at most 72 characters"},
	}
	for _, tc := range testCases {
		err := hasher.ValidateStrength(tc.password)
		assert.Error(t, err, "expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}
