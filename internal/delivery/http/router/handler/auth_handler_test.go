package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"innkeep/config"
	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/validator"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase satisfies usecase.AuthUsecase with canned responses so the
// handler and error middleware can be exercised without the real service.
type stubAuthUsecase struct {
	loginErr   error
	validation *usecase.TokenValidation
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginInput) (*usecase.AuthOutput, error) {
	return nil, s.loginErr
}

func (s *stubAuthUsecase) ValidateToken(context.Context, string) (*usecase.TokenValidation, error) {
	if s.validation != nil {
		return s.validation, nil
	}

	return &usecase.TokenValidation{Valid: true, Status: usecase.TokenStatusValid}, nil
}

func (s *stubAuthUsecase) ForgotPassword(context.Context, string) (*usecase.ForgotPasswordOutput, error) {
	return &usecase.ForgotPasswordOutput{}, nil
}

func (s *stubAuthUsecase) ResetPassword(context.Context, usecase.ResetPasswordInput) error {
	return nil
}

func (s *stubAuthUsecase) ChangePassword(context.Context, uuid.UUID, usecase.ChangePasswordInput) error {
	return nil
}

func (s *stubAuthUsecase) ChangeEmail(context.Context, uuid.UUID, usecase.ChangeEmailInput) (*usecase.AuthOutput, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_ValidateToken_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, &config.Config{}, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/validate-token",
		strings.NewReader(`{"token":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ValidateToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"valid":false`)
	assert.Contains(t, body, `"status":"missing"`)
	assert.NotContains(t, body, `"user"`)
}

func TestAuthHandler_ValidateToken_BearerHeader(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, &config.Config{}, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/validate-token", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ValidateToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"valid"`)
}

func TestAuthHandler_ValidateToken_MissingAndMalformedDiffer(t *testing.T) {
	// The usecase classifies a malformed token; a request with no token at
	// all never reaches it. The two responses must not look alike.
	h := NewAuthHandler(&stubAuthUsecase{
		validation: &usecase.TokenValidation{Valid: false, Status: usecase.TokenStatusInvalid},
	}, &config.Config{}, discardLogger())

	e := echo.New()

	missingReq := httptest.NewRequest(http.MethodPost, "/auth/validate-token", nil)
	missingRec := httptest.NewRecorder()
	require.NoError(t, h.ValidateToken(e.NewContext(missingReq, missingRec)))

	malformedReq := httptest.NewRequest(http.MethodPost, "/auth/validate-token", nil)
	malformedReq.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	malformedRec := httptest.NewRecorder()
	require.NoError(t, h.ValidateToken(e.NewContext(malformedReq, malformedRec)))

	assert.Contains(t, missingRec.Body.String(), `"status":"missing"`)
	assert.Contains(t, malformedRec.Body.String(), `"status":"invalid"`)
	assert.NotEqual(t, missingRec.Body.String(), malformedRec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentialsEnvelope(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials},
		&config.Config{}, discardLogger())

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.POST("/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"anna@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, `"INVALID_CREDENTIALS"`)
	assert.Contains(t, body, "Invalid email or password")
}

func TestAuthHandler_Register_MissingEmailRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, &config.Config{}, discardLogger())

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.POST("/auth/register", h.Register)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"password":"CorrectHorse9!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
