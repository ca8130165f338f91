package usecase

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomTypeInput carries the writable fields of a room type.
type RoomTypeInput struct {
	Name             string
	Description      string
	ShortDescription string
	MaxOccupancy     int
	Size             int
	BaseRate         float64
	Currency         string
	Amenities        []string
	Images           []string
	BedType          string
	Features         []string
	TotalRooms       int
	IsActive         *bool
	SortOrder        int
}

// RoomUsecase defines the room type management operations of the admin
// surface. All operations act within the resolved tenant hotel.
type RoomUsecase interface {
	List(ctx context.Context, actor Actor) ([]*entity.RoomType, error)
	Get(ctx context.Context, actor Actor, roomTypeID uuid.UUID) (*entity.RoomType, error)
	Create(ctx context.Context, actor Actor, input *RoomTypeInput) (*entity.RoomType, error)
	Update(ctx context.Context, actor Actor, roomTypeID uuid.UUID, input *RoomTypeInput) (*entity.RoomType, error)
	Delete(ctx context.Context, actor Actor, roomTypeID uuid.UUID) error
}
