package postgres

import (
	"context"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roomTypeRepository implements the domain.RoomTypeRepository interface using GORM.
// Every query predicate includes the hotel id.
type roomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository is the constructor for roomTypeRepository.
func NewRoomTypeRepository(db *gorm.DB) repository.RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

// FindByID retrieves a room type by id within a hotel.
func (repo *roomTypeRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.RoomType, error) {
	var roomM model.RoomTypeModel
	err := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		First(&roomM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find room type")
	}

	return toRoomTypeDomain(&roomM), nil
}

// FindByHotel retrieves all room types for a hotel, ordered by sort order.
func (repo *roomTypeRepository) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("hotel_id = ?", hotelID))
}

// FindActiveByHotel retrieves only active room types for a hotel.
func (repo *roomTypeRepository) FindActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("hotel_id = ? AND is_active = true", hotelID))
}

func (repo *roomTypeRepository) find(_ context.Context, query *gorm.DB) ([]*entity.RoomType, error) {
	var models []*model.RoomTypeModel
	if err := query.Order("sort_order ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list room types")
	}

	rooms := make([]*entity.RoomType, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, toRoomTypeDomain(m))
	}

	return rooms, nil
}

// Create persists a new room type.
func (repo *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	roomM := fromRoomTypeDomain(roomType)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create room type")
	}

	roomType.ID = roomM.ID
	roomType.CreatedAt = roomM.CreatedAt
	roomType.UpdatedAt = roomM.UpdatedAt

	return nil
}

// Update modifies an existing room type within a hotel.
func (repo *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	roomM := fromRoomTypeDomain(roomType)

	result := repo.db.WithContext(ctx).
		Model(&model.RoomTypeModel{}).
		Where("hotel_id = ? AND id = ?", roomType.HotelID, roomType.ID).
		Select("*").
		Omit("id", "hotel_id", "created_at").
		Updates(roomM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update room type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomTypeNotFound
	}

	return nil
}

// Delete removes a room type by id within a hotel.
func (repo *roomTypeRepository) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		Delete(&model.RoomTypeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete room type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomTypeNotFound
	}

	return nil
}
