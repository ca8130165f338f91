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

// addonRepository implements the domain.AddonRepository interface using GORM.
// Every query predicate includes the hotel id.
type addonRepository struct {
	db *gorm.DB
}

// NewAddonRepository is the constructor for addonRepository.
func NewAddonRepository(db *gorm.DB) repository.AddonRepository {
	return &addonRepository{db: db}
}

// FindByID retrieves an add-on by id within a hotel.
func (repo *addonRepository) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.Addon, error) {
	var addonM model.AddonModel
	err := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		First(&addonM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to find addon")
	}

	return toAddonDomain(&addonM), nil
}

// FindByHotel retrieves all add-ons for a hotel, ordered by sort order.
func (repo *addonRepository) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.Addon, error) {
	var models []*model.AddonModel
	err := repo.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("sort_order ASC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addons")
	}

	addons := make([]*entity.Addon, 0, len(models))
	for _, m := range models {
		addons = append(addons, toAddonDomain(m))
	}

	return addons, nil
}

// Create persists a new add-on.
func (repo *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	addonM := fromAddonDomain(addon)

	if err := repo.db.WithContext(ctx).Create(addonM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create addon")
	}

	addon.ID = addonM.ID
	addon.CreatedAt = addonM.CreatedAt
	addon.UpdatedAt = addonM.UpdatedAt

	return nil
}

// Update modifies an existing add-on within a hotel.
func (repo *addonRepository) Update(ctx context.Context, addon *entity.Addon) error {
	addonM := fromAddonDomain(addon)

	result := repo.db.WithContext(ctx).
		Model(&model.AddonModel{}).
		Where("hotel_id = ? AND id = ?", addon.HotelID, addon.ID).
		Select("*").
		Omit("id", "hotel_id", "created_at").
		Updates(addonM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update addon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddonNotFound
	}

	return nil
}

// Delete removes an add-on by id within a hotel.
func (repo *addonRepository) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		Delete(&model.AddonModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete addon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddonNotFound
	}

	return nil
}
