package impl

import (
	"context"
	"log/slog"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// roomService implements the RoomUsecase interface.
type roomService struct {
	tenantResolver

	roomRepo repository.RoomTypeRepository
	logger   *slog.Logger
}

// NewRoomService is the constructor for roomService.
func NewRoomService(
	hotelRepo repository.HotelRepository,
	roomRepo repository.RoomTypeRepository,
	logger *slog.Logger,
) usecase.RoomUsecase {
	return &roomService{
		tenantResolver: tenantResolver{hotelRepo: hotelRepo},
		roomRepo:       roomRepo,
		logger:         logger,
	}
}

// List returns all room types of the resolved hotel.
func (srv *roomService) List(ctx context.Context, actor usecase.Actor) ([]*entity.RoomType, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	return srv.roomRepo.FindByHotel(ctx, hotel.ID)
}

// Get returns one room type within the resolved hotel.
func (srv *roomService) Get(ctx context.Context, actor usecase.Actor, roomTypeID uuid.UUID) (*entity.RoomType, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	roomType, err := srv.roomRepo.FindByID(ctx, hotel.ID, roomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return nil, domainerrors.ErrRoomTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find room type")
	}

	return roomType, nil
}

// Create adds a room type to the resolved hotel.
func (srv *roomService) Create(ctx context.Context, actor usecase.Actor, input *usecase.RoomTypeInput) (*entity.RoomType, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	roomType := &entity.RoomType{
		HotelID:  hotel.ID,
		IsActive: true,
	}
	applyRoomTypeInput(roomType, input, hotel.Currency)

	if err := srv.roomRepo.Create(ctx, roomType); err != nil {
		return nil, errors.Wrap(err, "failed to create room type")
	}

	srv.logger.InfoContext(ctx, "room type created",
		slog.String("hotelId", hotel.ID.String()),
		slog.String("roomTypeId", roomType.ID.String()),
	)

	return roomType, nil
}

// Update replaces the writable fields of a room type within the resolved hotel.
func (srv *roomService) Update(ctx context.Context, actor usecase.Actor, roomTypeID uuid.UUID, input *usecase.RoomTypeInput) (*entity.RoomType, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	roomType, err := srv.roomRepo.FindByID(ctx, hotel.ID, roomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return nil, domainerrors.ErrRoomTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find room type")
	}

	applyRoomTypeInput(roomType, input, hotel.Currency)

	if err := srv.roomRepo.Update(ctx, roomType); err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return nil, domainerrors.ErrRoomTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to update room type")
	}

	return roomType, nil
}

// Delete removes a room type from the resolved hotel.
func (srv *roomService) Delete(ctx context.Context, actor usecase.Actor, roomTypeID uuid.UUID) error {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return err
	}

	if err := srv.roomRepo.Delete(ctx, hotel.ID, roomTypeID); err != nil {
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return domainerrors.ErrRoomTypeNotFound
		}

		return errors.Wrap(err, "failed to delete room type")
	}

	return nil
}

func applyRoomTypeInput(roomType *entity.RoomType, input *usecase.RoomTypeInput, hotelCurrency string) {
	roomType.Name = input.Name
	roomType.Description = input.Description
	roomType.ShortDescription = input.ShortDescription
	roomType.MaxOccupancy = input.MaxOccupancy
	roomType.Size = input.Size
	roomType.BaseRate = input.BaseRate
	roomType.Amenities = input.Amenities
	roomType.Images = input.Images
	roomType.BedType = input.BedType
	roomType.Features = input.Features
	roomType.TotalRooms = input.TotalRooms
	roomType.SortOrder = input.SortOrder

	roomType.Currency = input.Currency
	if roomType.Currency == "" {
		roomType.Currency = hotelCurrency
	}
	if input.IsActive != nil {
		roomType.IsActive = *input.IsActive
	}
	if roomType.MaxOccupancy <= 0 {
		roomType.MaxOccupancy = 2
	}
	if roomType.TotalRooms <= 0 {
		roomType.TotalRooms = 1
	}
}
