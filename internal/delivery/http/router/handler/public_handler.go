package handler

import (
	"log/slog"
	"net/http"

	"innkeep/internal/delivery/http/response"
	"innkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicHandler holds dependencies for the unauthenticated booking-site API.
type PublicHandler struct {
	uc     usecase.PublicUsecase
	logger *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler, injected by Fx.
func NewPublicHandler(uc usecase.PublicUsecase, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{uc: uc, logger: logger}
}

// HotelBySlug returns the public view of a hotel, translated when the lang
// query parameter matches a stored translation.
func (h *PublicHandler) HotelBySlug(c echo.Context) error {
	hotel, err := h.uc.HotelBySlug(c.Request().Context(), c.Param("slug"), c.QueryParam("lang"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPublicHotelView(hotel), "")
}

// RoomTypes returns the active room types of a hotel.
func (h *PublicHandler) RoomTypes(c echo.Context) error {
	rooms, err := h.uc.RoomTypes(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomTypeViews(rooms), "")
}

// Addons returns the add-ons of a hotel, empty when the hotel hides them.
func (h *PublicHandler) Addons(c echo.Context) error {
	addons, err := h.uc.Addons(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddonViews(addons), "")
}

// PaymentSettings returns the public payment configuration of a hotel.
func (h *PublicHandler) PaymentSettings(c echo.Context) error {
	settings, err := h.uc.PaymentSettings(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// ExchangeRates returns cached conversion rates for a base currency. An
// upstream outage degrades to an empty rate map, never an error status.
func (h *PublicHandler) ExchangeRates(c echo.Context) error {
	rates, err := h.uc.ExchangeRates(c.Request().Context(), c.QueryParam("base"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "")
}
