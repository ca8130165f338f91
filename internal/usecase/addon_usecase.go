package usecase

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// AddonInput carries the writable fields of an add-on.
type AddonInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	Image       string
	Duration    string
	PerPerson   *bool
	SortOrder   int
}

// AddonUsecase defines the add-on management operations of the admin
// surface. All operations act within the resolved tenant hotel.
type AddonUsecase interface {
	List(ctx context.Context, actor Actor) ([]*entity.Addon, error)
	Get(ctx context.Context, actor Actor, addonID uuid.UUID) (*entity.Addon, error)
	Create(ctx context.Context, actor Actor, input *AddonInput) (*entity.Addon, error)
	Update(ctx context.Context, actor Actor, addonID uuid.UUID, input *AddonInput) (*entity.Addon, error)
	Delete(ctx context.Context, actor Actor, addonID uuid.UUID) error
}
