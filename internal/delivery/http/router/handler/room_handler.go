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

// RoomHandler holds dependencies for room type handlers.
type RoomHandler struct {
	uc     usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler, injected by Fx.
func NewRoomHandler(uc usecase.RoomUsecase, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{uc: uc, logger: logger}
}

type roomTypeRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	MaxOccupancy     int      `json:"maxOccupancy" validate:"omitempty,min=0"`
	Size             int      `json:"size"`
	BaseRate         float64  `json:"baseRate" validate:"min=0"`
	Currency         string   `json:"currency" validate:"omitempty,len=3"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images"`
	BedType          string   `json:"bedType"`
	Features         []string `json:"features"`
	TotalRooms       int      `json:"totalRooms" validate:"omitempty,min=0"`
	IsActive         *bool    `json:"isActive"`
	SortOrder        int      `json:"sortOrder"`
}

func (req *roomTypeRequest) toInput() *usecase.RoomTypeInput {
	return &usecase.RoomTypeInput{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		MaxOccupancy:     req.MaxOccupancy,
		Size:             req.Size,
		BaseRate:         req.BaseRate,
		Currency:         req.Currency,
		Amenities:        req.Amenities,
		Images:           req.Images,
		BedType:          req.BedType,
		Features:         req.Features,
		TotalRooms:       req.TotalRooms,
		IsActive:         req.IsActive,
		SortOrder:        req.SortOrder,
	}
}

// List returns the room types of the resolved hotel.
func (h *RoomHandler) List(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	rooms, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomTypeViews(rooms), "")
}

// Create adds a room type to the resolved hotel.
func (h *RoomHandler) Create(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.uc.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRoomTypeView(room), "Room type created")
}

// Update replaces the writable fields of a room type.
func (h *RoomHandler) Update(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrRoomTypeNotFound
	}

	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room type input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.uc.Update(c.Request().Context(), actor, roomTypeID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRoomTypeView(room), "Room type updated")
}

// Delete removes a room type from the resolved hotel.
func (h *RoomHandler) Delete(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrRoomTypeNotFound
	}

	if err := h.uc.Delete(c.Request().Context(), actor, roomTypeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room type deleted")
}
