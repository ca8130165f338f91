package handler

import (
	"log/slog"
	"net/http"

	"innkeep/internal/delivery/http/response"
	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuperadminHandler holds dependencies for platform administration handlers.
type SuperadminHandler struct {
	uc     usecase.SuperadminUsecase
	logger *slog.Logger
}

// NewSuperadminHandler is the constructor for SuperadminHandler, injected by Fx.
func NewSuperadminHandler(uc usecase.SuperadminUsecase, logger *slog.Logger) *SuperadminHandler {
	return &SuperadminHandler{uc: uc, logger: logger}
}

// ListUsers returns accounts, optionally filtered by status and type.
func (h *SuperadminHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Status: entity.UserStatus(c.QueryParam("status")),
		Type:   entity.UserType(c.QueryParam("type")),
	}

	users, err := h.uc.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

type updateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateUserStatus moves an account to a new lifecycle status.
func (h *SuperadminHandler) UpdateUserStatus(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), userID, entity.UserStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Account status updated")
}

// ListHotels returns every hotel on the platform.
func (h *SuperadminHandler) ListHotels(c echo.Context) error {
	hotels, err := h.uc.ListAllHotels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelViews(hotels), "")
}
