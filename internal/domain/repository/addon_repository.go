package repository

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAddonNotFound is returned when an add-on is not found within the hotel scope.
var ErrAddonNotFound = errors.New("addon not found")

// AddonRepository defines the operations for add-on persistence.
// Every operation is scoped by hotel id.
type AddonRepository interface {
	// FindByID retrieves an add-on by id within a hotel.
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.Addon, error)

	// FindByHotel retrieves all add-ons for a hotel, ordered by sort order.
	FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.Addon, error)

	// Create persists a new add-on.
	Create(ctx context.Context, addon *entity.Addon) error

	// Update modifies an existing add-on within a hotel.
	Update(ctx context.Context, addon *entity.Addon) error

	// Delete removes an add-on by id within a hotel.
	Delete(ctx context.Context, hotelID, id uuid.UUID) error
}
