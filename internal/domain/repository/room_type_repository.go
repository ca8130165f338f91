package repository

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRoomTypeNotFound is returned when a room type is not found within the hotel scope.
var ErrRoomTypeNotFound = errors.New("room type not found")

// RoomTypeRepository defines the operations for room type persistence.
// Every operation is scoped by hotel id; a room type is unreachable from
// any other tenant.
type RoomTypeRepository interface {
	// FindByID retrieves a room type by id within a hotel.
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.RoomType, error)

	// FindByHotel retrieves all room types for a hotel, ordered by sort order.
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error)

	// FindActiveByHotel retrieves only active room types for a hotel, ordered by sort order.
	FindActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error)

	// Create persists a new room type.
	Create(ctx context.Context, roomType *entity.RoomType) error

	// Update modifies an existing room type within a hotel.
	Update(ctx context.Context, roomType *entity.RoomType) error

	// Delete removes a room type by id within a hotel.
	Delete(ctx context.Context, hotelID, id uuid.UUID) error
}
