package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/domain/service"
	"innkeep/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users  *mockUserRepo
	consts *mockConsentRepo
	tokens *mockResetTokenRepo
	hasher *mockHasher
	jwts   *mockTokenService
	srv    usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		users:  &mockUserRepo{},
		consts: &mockConsentRepo{},
		tokens: &mockResetTokenRepo{},
		hasher: &mockHasher{},
		jwts:   &mockTokenService{},
	}
	tx := &fakeTxManager{users: f.users, consts: f.consts, tokens: f.tokens}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.srv = NewAuthService(tx, f.users, f.tokens, f.hasher, f.jwts, nil, logger)

	return f
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.On("ValidateStrength", "Sup3rSecret").Return(nil)
	f.hasher.On("Hash", "Sup3rSecret").Return("hashed", nil)
	f.users.On("FindByEmail", mock.Anything, "Anna@Example.com").Return(nil, repository.ErrUserNotFound)
	f.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	f.consts.On("RecordAll", mock.Anything, mock.Anything).Return(nil)
	f.jwts.On("Issue", mock.AnythingOfType("*entity.User")).Return("token-123", nil)

	out, err := f.srv.Register(context.Background(), usecase.RegisterInput{
		Email:         "  Anna@Example.com ",
		Password:      "Sup3rSecret",
		AcceptTerms:   true,
		AcceptPrivacy: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", out.Token)
	// Whitespace is trimmed; the address itself is stored with its case
	// intact, the way peer services sharing the users table expect it.
	assert.Equal(t, "Anna@Example.com", out.User.Email)
	// Display name defaults from the email local part.
	assert.Equal(t, "Anna", out.User.Name)
	assert.Equal(t, entity.UserTypeHotel, out.User.Type)
	assert.Equal(t, entity.StatusPending, out.User.Status)
	assert.NotNil(t, out.User.TermsAcceptedAt)
	assert.NotNil(t, out.User.PrivacyAcceptedAt)
	assert.Nil(t, out.User.MarketingConsentAt)
}

func TestRegister_ConsentRequired(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.srv.Register(context.Background(), usecase.RegisterInput{
		Email: "a@b.com", Password: "Sup3rSecret", AcceptPrivacy: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTermsNotAccepted)

	_, err = f.srv.Register(context.Background(), usecase.RegisterInput{
		Email: "a@b.com", Password: "Sup3rSecret", AcceptTerms: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPrivacyNotAccepted)

	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_MarketingConsentLedger(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.On("ValidateStrength", mock.Anything).Return(nil)
	f.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	f.users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.jwts.On("Issue", mock.Anything).Return("t", nil)

	var recorded []*entity.ConsentRecord
	f.consts.On("RecordAll", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).([]*entity.ConsentRecord)
	}).Return(nil)

	out, err := f.srv.Register(context.Background(), usecase.RegisterInput{
		Email: "a@b.com", Password: "Sup3rSecret",
		AcceptTerms: true, AcceptPrivacy: true, MarketingConsent: true,
	})
	require.NoError(t, err)
	require.Len(t, recorded, 3)
	assert.Equal(t, entity.ConsentTerms, recorded[0].Type)
	assert.Equal(t, entity.ConsentPrivacy, recorded[1].Type)
	assert.Equal(t, entity.ConsentMarketing, recorded[2].Type)
	assert.NotNil(t, out.User.MarketingConsentAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.On("ValidateStrength", mock.Anything).Return(nil)
	f.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	f.users.On("FindByEmail", mock.Anything, "a@b.com").Return(&entity.User{Email: "a@b.com"}, nil)

	_, err := f.srv.Register(context.Background(), usecase.RegisterInput{
		Email: "a@b.com", Password: "Sup3rSecret", AcceptTerms: true, AcceptPrivacy: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_EmailLookupPreservesCase(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Email: "Anna@Example.com", PasswordHash: "hash", Status: entity.StatusVerified}
	f.users.On("FindByEmail", mock.Anything, "Anna@Example.com").Return(user, nil)
	f.hasher.On("Check", "Sup3rSecret", "hash").Return(true)
	f.jwts.On("Issue", mock.Anything).Return("t", nil)

	out, err := f.srv.Login(context.Background(), usecase.LoginInput{
		Email: " Anna@Example.com ", Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna@Example.com", out.User.Email)
	// A differently-cased address is a different lookup key entirely.
	f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, "anna@example.com")
}

func TestLogin_UnknownEmailAndWrongPasswordShareError(t *testing.T) {
	f := newAuthFixture(t)

	f.users.On("FindByEmail", mock.Anything, "nobody@b.com").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := f.srv.Login(context.Background(), usecase.LoginInput{Email: "nobody@b.com", Password: "x"})

	user := &entity.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hash", Status: entity.StatusVerified}
	f.users.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil)
	f.hasher.On("Check", "wrong", "hash").Return(false)
	_, errWrong := f.srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
}

func TestLogin_SuspendedRejectedAfterPasswordCheck(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hash", Status: entity.StatusSuspended}
	f.users.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil)
	f.hasher.On("Check", "pw", "hash").Return(true)

	_, err := f.srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountSuspended)
}

func TestLogin_PendingAccountsMaySignIn(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hash", Status: entity.StatusPending}
	f.users.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil)
	f.hasher.On("Check", "pw", "hash").Return(true)
	f.jwts.On("Issue", user).Return("token", nil)

	out, err := f.srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
}

func TestValidateToken_Statuses(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@b.com", Status: entity.StatusVerified}
	claims := &service.Claims{
		Email:            "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}

	t.Run("valid", func(t *testing.T) {
		f := newAuthFixture(t)
		f.jwts.On("Verify", "good").Return(claims, nil)
		f.users.On("FindByID", mock.Anything, userID).Return(user, nil)

		out, err := f.srv.ValidateToken(context.Background(), "good")
		require.NoError(t, err)
		assert.True(t, out.Valid)
		assert.Equal(t, usecase.TokenStatusValid, out.Status)
		assert.Equal(t, user, out.User)
	})

	t.Run("expired", func(t *testing.T) {
		f := newAuthFixture(t)
		f.jwts.On("Verify", "old").Return(nil, service.ErrTokenExpired)

		out, err := f.srv.ValidateToken(context.Background(), "old")
		require.NoError(t, err)
		assert.False(t, out.Valid)
		assert.Equal(t, usecase.TokenStatusExpired, out.Status)
	})

	t.Run("garbage", func(t *testing.T) {
		f := newAuthFixture(t)
		f.jwts.On("Verify", "garbage").Return(nil, service.ErrTokenInvalid)

		out, err := f.srv.ValidateToken(context.Background(), "garbage")
		require.NoError(t, err)
		assert.Equal(t, usecase.TokenStatusInvalid, out.Status)
	})

	t.Run("account gone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.jwts.On("Verify", "orphan").Return(claims, nil)
		f.users.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		out, err := f.srv.ValidateToken(context.Background(), "orphan")
		require.NoError(t, err)
		assert.Equal(t, usecase.TokenStatusInvalid, out.Status)
	})
}

func TestForgotPassword_UniformForMissingAndSuspended(t *testing.T) {
	f := newAuthFixture(t)

	f.users.On("FindByEmail", mock.Anything, "nobody@b.com").Return(nil, repository.ErrUserNotFound)
	outMissing, err := f.srv.ForgotPassword(context.Background(), "nobody@b.com")
	require.NoError(t, err)

	suspended := &entity.User{ID: uuid.New(), Status: entity.StatusSuspended}
	f.users.On("FindByEmail", mock.Anything, "frozen@b.com").Return(suspended, nil)
	outSuspended, err := f.srv.ForgotPassword(context.Background(), "frozen@b.com")
	require.NoError(t, err)

	assert.Equal(t, outMissing, outSuspended)
	assert.Empty(t, outMissing.ResetToken)
	f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestForgotPassword_IssuesTokenAndInvalidatesOlder(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Email: "a@b.com", Status: entity.StatusVerified}
	f.users.On("FindByEmail", mock.Anything, "a@b.com").Return(user, nil)
	f.tokens.On("DeleteExpired", mock.Anything).Return(nil)
	f.tokens.On("InvalidateOthers", mock.Anything, user.ID, uuid.Nil).Return(nil)

	var created *entity.PasswordResetToken
	f.tokens.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.PasswordResetToken)
	}).Return(nil)

	out, err := f.srv.ForgotPassword(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, created.Token, out.ResetToken)
	// 32 random bytes in url-safe base64 without padding.
	assert.Len(t, out.ResetToken, 43)
	assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, time.Minute)
	f.tokens.AssertCalled(t, "InvalidateOthers", mock.Anything, user.ID, uuid.Nil)
	// Each issue doubles as the expiry sweep for the tokens table.
	f.tokens.AssertCalled(t, "DeleteExpired", mock.Anything)
}

func TestResetPassword_Success(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Status: entity.StatusVerified}
	token := &entity.PasswordResetToken{
		ID: uuid.New(), UserID: user.ID, Token: "abc", ExpiresAt: time.Now().Add(time.Hour),
	}
	f.tokens.On("FindByToken", mock.Anything, "abc").Return(token, nil)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.hasher.On("ValidateStrength", "N3wSecret").Return(nil)
	f.hasher.On("Hash", "N3wSecret").Return("newhash", nil)
	f.tokens.On("MarkUsed", mock.Anything, token.ID).Return(nil)
	f.users.On("UpdatePasswordHash", mock.Anything, user.ID, "newhash").Return(nil)
	f.tokens.On("InvalidateOthers", mock.Anything, user.ID, token.ID).Return(nil)

	err := f.srv.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "abc", NewPassword: "N3wSecret"})
	require.NoError(t, err)
	f.tokens.AssertCalled(t, "InvalidateOthers", mock.Anything, user.ID, token.ID)
}

func TestResetPassword_RejectsUnusableTokens(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Status: entity.StatusVerified}

	cases := []struct {
		name  string
		token *entity.PasswordResetToken
		err   error
	}{
		{
			name:  "expired",
			token: &entity.PasswordResetToken{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)},
		},
		{
			name:  "already used",
			token: &entity.PasswordResetToken{ID: uuid.New(), UserID: user.ID, Used: true, ExpiresAt: time.Now().Add(time.Hour)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.tokens.On("FindByToken", mock.Anything, "abc").Return(tc.token, nil)

			err := f.srv.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "abc", NewPassword: "N3wSecret"})
			assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.On("FindByToken", mock.Anything, "nope").Return(nil, repository.ErrResetTokenNotFound)

		err := f.srv.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "nope", NewPassword: "N3wSecret"})
		assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	})
}

func TestResetPassword_LostRaceLooksInvalid(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), Status: entity.StatusVerified}
	token := &entity.PasswordResetToken{
		ID: uuid.New(), UserID: user.ID, Token: "abc", ExpiresAt: time.Now().Add(time.Hour),
	}
	f.tokens.On("FindByToken", mock.Anything, "abc").Return(token, nil)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.hasher.On("ValidateStrength", mock.Anything).Return(nil)
	f.hasher.On("Hash", mock.Anything).Return("newhash", nil)
	f.tokens.On("MarkUsed", mock.Anything, token.ID).Return(repository.ErrResetTokenConsumed)

	err := f.srv.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "abc", NewPassword: "N3wSecret"})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	f.users.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	f := newAuthFixture(t)

	user := &entity.User{ID: uuid.New(), PasswordHash: "hash"}
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.hasher.On("Check", "wrong", "hash").Return(false)

	err := f.srv.ChangePassword(context.Background(), user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "wrong", NewPassword: "N3wSecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)
}

func TestChangeEmail(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "hash"}

	t.Run("same email rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.hasher.On("Check", "pw", "hash").Return(true)

		_, err := f.srv.ChangeEmail(context.Background(), user.ID, usecase.ChangeEmailInput{
			NewEmail: "A@b.com", Password: "pw",
		})
		assert.ErrorIs(t, err, domainerrors.ErrSameEmail)
	})

	t.Run("taken email rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.hasher.On("Check", "pw", "hash").Return(true)
		f.users.On("FindByEmail", mock.Anything, "new@b.com").Return(&entity.User{}, nil)

		_, err := f.srv.ChangeEmail(context.Background(), user.ID, usecase.ChangeEmailInput{
			NewEmail: "new@b.com", Password: "pw",
		})
		assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	})

	t.Run("success reissues token", func(t *testing.T) {
		f := newAuthFixture(t)
		fresh := *user
		f.users.On("FindByID", mock.Anything, user.ID).Return(&fresh, nil)
		f.hasher.On("Check", "pw", "hash").Return(true)
		f.users.On("FindByEmail", mock.Anything, "new@b.com").Return(nil, repository.ErrUserNotFound)
		f.users.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.jwts.On("Issue", mock.Anything).Return("fresh-token", nil)

		out, err := f.srv.ChangeEmail(context.Background(), user.ID, usecase.ChangeEmailInput{
			NewEmail: "new@b.com", Password: "pw",
		})
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", out.Token)
		assert.Equal(t, "new@b.com", out.User.Email)
	})
}
