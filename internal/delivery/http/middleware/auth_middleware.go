package middleware

import (
	"strings"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/domain/service"
	"innkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate.
const (
	actorContextKey = "actor"

	// HotelHeader selects the tenant an admin request acts on. Absent means
	// the owner's first-created hotel.
	HotelHeader = "X-Hotel-Id"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token, loads the account and stashes the
// acting identity on the request context. Rejected and suspended accounts are
// shut out of the whole admin surface here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrInvalidToken
		}

		userID, err := claims.UserID()
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load account")
		}

		switch user.Status {
		case entity.StatusRejected:
			return domainerrors.ErrAccountRejected
		case entity.StatusSuspended:
			return domainerrors.ErrAccountSuspended
		}

		c.Set(actorContextKey, usecase.Actor{
			User:    user,
			HotelID: strings.TrimSpace(c.Request().Header.Get(HotelHeader)),
		})

		return next(c)
	}
}

// RequireHotelAdmin admits hotel-owner accounts; superadmins pass through.
// Must run after Authenticate.
func (m *AuthMiddleware) RequireHotelAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := Actor(c)
		if !ok {
			return domainerrors.ErrInvalidToken
		}

		if actor.User.Type != entity.UserTypeHotel && !actor.User.IsSuperadmin() {
			return domainerrors.ErrHotelAdminOnly
		}

		return next(c)
	}
}

// RequireVerified admits only accounts whose status is verified, with a
// per-status reason for everything else. Pending owners may still sign in
// and configure their property; routes that publish content or touch other
// tenants sit behind this gate. Must run after Authenticate.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := Actor(c)
		if !ok {
			return domainerrors.ErrInvalidToken
		}

		switch actor.User.Status {
		case entity.StatusVerified:
			return next(c)
		case entity.StatusRejected:
			return domainerrors.ErrAccountRejected
		case entity.StatusSuspended:
			return domainerrors.ErrAccountSuspended
		default:
			return domainerrors.ErrAccountPending
		}
	}
}

// RequireSuperadmin admits superadmin accounts only. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireSuperadmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := Actor(c)
		if !ok {
			return domainerrors.ErrInvalidToken
		}

		if !actor.User.IsSuperadmin() {
			return domainerrors.ErrSuperadminOnly
		}

		return next(c)
	}
}

// Actor returns the acting identity stashed by Authenticate.
func Actor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}
