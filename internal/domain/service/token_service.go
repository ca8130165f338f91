package service

import (
	"time"

	"innkeep/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Token validation errors. Callers distinguish expiry from any other
// defect because the two map to different client remedies.
var (
	// ErrTokenExpired is returned when a token's signature is valid but its expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for any other token defect: bad signature, wrong algorithm, garbage input.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims carried in access tokens.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the account id.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrTokenInvalid, "subject is not a valid uuid")
	}

	return id, nil
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for a user.
	Issue(user *entity.User) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	// Returns ErrTokenExpired for valid-but-expired tokens and
	// ErrTokenInvalid for everything else.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
