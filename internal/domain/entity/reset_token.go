// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use, time-boxed capability to set a new
// password. At most one redemption per token value: marking it used is a
// conditional update that succeeds exactly once, and issuing a newer token
// for the same user invalidates all older unused ones.
type PasswordResetToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // The account this token can reset.
	Token     string    // URL-safe random value with at least 32 bytes of entropy.
	ExpiresAt time.Time // After this instant the token can no longer be redeemed.
	Used      bool      // Set once, on redemption or bulk invalidation.
	CreatedAt time.Time
}

// Redeemable reports whether the token can still be consumed at the given time.
func (t *PasswordResetToken) Redeemable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
