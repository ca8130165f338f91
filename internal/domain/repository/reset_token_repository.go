package repository

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for password reset token persistence.
var (
	// ErrResetTokenNotFound is returned when a reset token is not found.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrResetTokenConsumed is returned when a conditional redemption finds the token already used.
	ErrResetTokenConsumed = errors.New("password reset token already consumed")
)

// ResetTokenRepository defines the interface for password reset token management.
// Tokens are single-use: redemption is a conditional update that succeeds at most once.
type ResetTokenRepository interface {
	// Create persists a new password reset token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByToken retrieves a reset token record by its token value.
	FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// MarkUsed flips the used flag on a token only if it is still unused.
	// Returns ErrResetTokenConsumed when another request got there first.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// InvalidateOthers marks all unused tokens for a user as used, except the
	// one being redeemed. Called after a successful password reset so stale
	// emails cannot be replayed.
	InvalidateOthers(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error

	// DeleteExpired removes all expired tokens from the database.
	// This should be called periodically for cleanup.
	DeleteExpired(ctx context.Context) error
}
