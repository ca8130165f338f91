// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"innkeep/config"
	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/domain/service"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Document versions recorded in the consent ledger.
	termsVersion   = "1.0"
	privacyVersion = "1.0"

	resetTokenBytes      = 32
	defaultResetTokenTTL = time.Hour
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	tokens         service.TokenService
	resetTokenTTL  time.Duration
	logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	resetTokenRepo repository.ResetTokenRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	resetTokenTTL := defaultResetTokenTTL
	if cfg != nil && cfg.Auth != nil && cfg.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = cfg.Auth.ResetTokenTTL
	}

	return &authService{
		txManager:      txManager,
		userRepo:       userRepo,
		resetTokenRepo: resetTokenRepo,
		hasher:         hasher,
		tokens:         tokens,
		resetTokenTTL:  resetTokenTTL,
		logger:         logger,
	}
}

// Register creates a hotel-owner account with its consent ledger entries and
// returns an immediately usable session token.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	// Both mandatory consents carry their own message so the frontend can
	// point at the exact unchecked box.
	if !input.AcceptTerms {
		return nil, domainerrors.ErrTermsNotAccepted
	}
	if !input.AcceptPrivacy {
		return nil, domainerrors.ErrPrivacyNotAccepted
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = nameFromEmail(email)
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              name,
		Type:              entity.UserTypeHotel,
		Status:            entity.StatusPending,
		TermsAcceptedAt:   &now,
		TermsVersion:      termsVersion,
		PrivacyAcceptedAt: &now,
		PrivacyVersion:    privacyVersion,
		MarketingConsent:  input.MarketingConsent,
	}
	if input.MarketingConsent {
		user.MarketingConsentAt = &now
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create user")
		}

		// The ledger always records the two mandatory consents; marketing
		// only when it was actually given.
		records := []*entity.ConsentRecord{
			{UserID: user.ID, Type: entity.ConsentTerms, Given: true, Version: termsVersion},
			{UserID: user.ID, Type: entity.ConsentPrivacy, Given: true, Version: privacyVersion},
		}
		if input.MarketingConsent {
			records = append(records, &entity.ConsentRecord{UserID: user.ID, Type: entity.ConsentMarketing, Given: true})
		}

		if err := repoFactory.NewConsentRepository().RecordAll(ctx, records); err != nil {
			return errors.Wrap(err, "failed to record consents")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.InfoContext(ctx, "account registered", slog.String("userId", user.ID.String()))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password share one
// error so the endpoint cannot be used to probe for accounts.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status == entity.StatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}

	token, err := srv.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// ValidateToken inspects a token without ever failing the request: the
// verdict is carried in the status field. A cryptographically valid token
// whose account no longer exists counts as invalid.
func (srv *authService) ValidateToken(ctx context.Context, tokenString string) (*usecase.TokenValidation, error) {
	claims, err := srv.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return &usecase.TokenValidation{Status: usecase.TokenStatusExpired}, nil
		}

		return &usecase.TokenValidation{Status: usecase.TokenStatusInvalid}, nil
	}

	userID, err := claims.UserID()
	if err != nil {
		return &usecase.TokenValidation{Status: usecase.TokenStatusInvalid}, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.TokenValidation{Status: usecase.TokenStatusInvalid}, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &usecase.TokenValidation{Valid: true, Status: usecase.TokenStatusValid, User: user}, nil
}

// ForgotPassword issues a reset token for existing, non-suspended accounts.
// The outcome is indistinguishable from the outside either way.
func (srv *authService) ForgotPassword(ctx context.Context, email string) (*usecase.ForgotPasswordOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.ForgotPasswordOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Status == entity.StatusSuspended {
		return &usecase.ForgotPasswordOutput{}, nil
	}

	tokenValue, err := generateResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	resetToken := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     tokenValue,
		ExpiresAt: time.Now().Add(srv.resetTokenTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewResetTokenRepository()

		// Opportunistic sweep: the table holds only short-lived tokens, so
		// each issue clears whatever has lapsed.
		if err := tokenRepo.DeleteExpired(ctx); err != nil {
			return errors.Wrap(err, "failed to delete expired tokens")
		}

		// A fresh request supersedes anything still outstanding.
		if err := tokenRepo.InvalidateOthers(ctx, user.ID, uuid.Nil); err != nil {
			return errors.Wrap(err, "failed to invalidate outstanding tokens")
		}

		if err := tokenRepo.Create(ctx, resetToken); err != nil {
			return errors.Wrap(err, "failed to create reset token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.InfoContext(ctx, "password reset token issued", slog.String("userId", user.ID.String()))

	return &usecase.ForgotPasswordOutput{ResetToken: tokenValue}, nil
}

// ResetPassword redeems a token exactly once and rotates the password.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	token, err := srv.resetTokenRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find reset token")
	}
	if !token.Redeemable(time.Now()) {
		return domainerrors.ErrResetTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find user")
	}
	if user.Status == entity.StatusSuspended {
		return domainerrors.ErrAccountSuspended
	}

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewResetTokenRepository()

		// Conditional update; a concurrent redemption of the same token
		// loses here and the whole transaction rolls back.
		if err := tokenRepo.MarkUsed(ctx, token.ID); err != nil {
			if errors.Is(err, repository.ErrResetTokenConsumed) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to mark reset token used")
		}

		if err := repoFactory.NewUserRepository().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := tokenRepo.InvalidateOthers(ctx, user.ID, token.ID); err != nil {
			return errors.Wrap(err, "failed to invalidate remaining tokens")
		}

		return nil
	})
}

// ChangePassword rotates the password of an authenticated account.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrWrongPassword
	}

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

// ChangeEmail moves the account to a new login email and reissues the
// session token, since the email claim just changed.
func (srv *authService) ChangeEmail(ctx context.Context, userID uuid.UUID, input usecase.ChangeEmailInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrWrongPassword
	}

	newEmail := normalizeEmail(input.NewEmail)
	if newEmail == normalizeEmail(user.Email) {
		return nil, domainerrors.ErrSameEmail
	}

	if _, err := srv.userRepo.FindByEmail(ctx, newEmail); err == nil {
		return nil, domainerrors.ErrEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	user.Email = newEmail
	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailInUse
		}

		return nil, errors.Wrap(err, "failed to update email")
	}

	token, err := srv.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// normalizeEmail trims surrounding whitespace only. Emails are stored and
// compared case-sensitively; peer services share the users table and expect
// the address exactly as registered.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// nameFromEmail derives a display name from the email local part,
// capitalizing its first letter.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "Guest"
	}

	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
