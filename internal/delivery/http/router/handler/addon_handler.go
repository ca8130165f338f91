package handler

import (
	"log/slog"
	"net/http"

	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/response"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddonHandler holds dependencies for add-on handlers.
type AddonHandler struct {
	uc     usecase.AddonUsecase
	logger *slog.Logger
}

// NewAddonHandler is the constructor for AddonHandler, injected by Fx.
func NewAddonHandler(uc usecase.AddonUsecase, logger *slog.Logger) *AddonHandler {
	return &AddonHandler{uc: uc, logger: logger}
}

type addonRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Duration    string  `json:"duration"`
	PerPerson   *bool   `json:"perPerson"`
	SortOrder   int     `json:"sortOrder"`
}

func (req *addonRequest) toInput() *usecase.AddonInput {
	return &usecase.AddonInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Image:       req.Image,
		Duration:    req.Duration,
		PerPerson:   req.PerPerson,
		SortOrder:   req.SortOrder,
	}
}

// List returns the add-ons of the resolved hotel.
func (h *AddonHandler) List(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	addons, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddonViews(addons), "")
}

// Create adds an add-on to the resolved hotel.
func (h *AddonHandler) Create(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req addonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid addon input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	addon, err := h.uc.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddonView(addon), "Addon created")
}

// Update replaces the writable fields of an add-on.
func (h *AddonHandler) Update(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	addonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrAddonNotFound
	}

	var req addonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid addon input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	addon, err := h.uc.Update(c.Request().Context(), actor, addonID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddonView(addon), "Addon updated")
}

// Delete removes an add-on from the resolved hotel.
func (h *AddonHandler) Delete(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	addonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrAddonNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), actor, addonID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Addon deleted")
}
