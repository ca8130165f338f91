// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new hotel-owner account.
type RegisterInput struct {
	Email            string
	Password         string
	Name             string
	AcceptTerms      bool
	AcceptPrivacy    bool
	MarketingConsent bool
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries a reset token together with the new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ChangePasswordInput requires the current password as proof of possession.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ChangeEmailInput requires the current password as proof of possession.
type ChangeEmailInput struct {
	NewEmail string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed session token together with the account.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// Token validation statuses reported by ValidateToken. A request carrying no
// token at all reports "missing", distinct from a malformed one.
const (
	TokenStatusValid   = "valid"
	TokenStatusExpired = "expired"
	TokenStatusInvalid = "invalid"
	TokenStatusMissing = "missing"
)

// TokenValidation describes the outcome of a token inspection. The operation
// itself never fails for a bad token; the status carries the verdict.
type TokenValidation struct {
	Valid  bool
	Status string
	User   *entity.User
}

// ForgotPasswordOutput carries the issued reset token. The token leaves the
// process only on debug builds; production responses stay uniform.
type ForgotPasswordOutput struct {
	ResetToken string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	ValidateToken(ctx context.Context, tokenString string) (*TokenValidation, error)
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
	ChangeEmail(ctx context.Context, userID uuid.UUID, input ChangeEmailInput) (*AuthOutput, error)
}
