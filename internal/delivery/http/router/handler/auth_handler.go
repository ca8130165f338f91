// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"innkeep/config"
	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/response"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

type registerRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	Name             string `json:"name"`
	AcceptTerms      bool   `json:"acceptTerms"`
	AcceptPrivacy    bool   `json:"acceptPrivacy"`
	MarketingConsent bool   `json:"marketingConsent"`
}

// Register handles the hotel-owner registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:            req.Email,
		Password:         req.Password,
		Name:             req.Name,
		AcceptTerms:      req.AcceptTerms,
		AcceptPrivacy:    req.AcceptPrivacy,
		MarketingConsent: req.MarketingConsent,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthView(output), "Account registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(output), "Login successful")
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateToken reports the status of a session token. The token rides the
// Authorization header like everywhere else, with a JSON body field kept as a
// fallback. The request itself always succeeds; the verdict is in the payload.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		var req validateTokenRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
		}
		token = req.Token
	}

	if token == "" {
		return response.Success(c, http.StatusOK, map[string]any{
			"valid":  false,
			"status": usecase.TokenStatusMissing,
		}, "Token validated")
	}

	result, err := h.uc.ValidateToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{
		"valid":  result.Valid,
		"status": result.Status,
	}
	if result.User != nil {
		payload["user"] = toUserView(result.User)
	}

	return response.Success(c, http.StatusOK, payload, "Token validated")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a reset token. The response is identical whether or
// not the email maps to an account.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{}
	// The raw token is echoed on debug builds only; production delivery
	// happens out of band.
	if h.cfg.Env.Debug && output.ResetToken != "" {
		payload["resetToken"] = output.ResetToken
	}

	return response.Success(c, http.StatusOK, payload,
		"If the email is registered, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ResetPassword redeems a reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been reset")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ChangePassword rotates the password of the authenticated account.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), actor.User.ID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

type changeEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangeEmail moves the authenticated account to a new login email.
func (h *AuthHandler) ChangeEmail(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req changeEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.ChangeEmail(c.Request().Context(), actor.User.ID, usecase.ChangeEmailInput{
		NewEmail: req.NewEmail,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(output), "Email changed successfully")
}

// bearerToken extracts the token from the Authorization header, or returns
// empty when the header is absent or not a bearer scheme.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return strings.TrimSpace(token)
}
