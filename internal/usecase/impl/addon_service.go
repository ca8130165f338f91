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

// addonService implements the AddonUsecase interface.
type addonService struct {
	tenantResolver

	addonRepo repository.AddonRepository
	logger    *slog.Logger
}

// NewAddonService is the constructor for addonService.
func NewAddonService(
	hotelRepo repository.HotelRepository,
	addonRepo repository.AddonRepository,
	logger *slog.Logger,
) usecase.AddonUsecase {
	return &addonService{
		tenantResolver: tenantResolver{hotelRepo: hotelRepo},
		addonRepo:      addonRepo,
		logger:         logger,
	}
}

// List returns all add-ons of the resolved hotel.
func (srv *addonService) List(ctx context.Context, actor usecase.Actor) ([]*entity.Addon, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	return srv.addonRepo.FindByHotel(ctx, hotel.ID)
}

// Get returns one add-on within the resolved hotel.
func (srv *addonService) Get(ctx context.Context, actor usecase.Actor, addonID uuid.UUID) (*entity.Addon, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	addon, err := srv.addonRepo.FindByID(ctx, hotel.ID, addonID)
	if err != nil {
		if errors.Is(err, repository.ErrAddonNotFound) {
			return nil, domainerrors.ErrAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to find addon")
	}

	return addon, nil
}

// Create adds an add-on to the resolved hotel.
func (srv *addonService) Create(ctx context.Context, actor usecase.Actor, input *usecase.AddonInput) (*entity.Addon, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	addon := &entity.Addon{HotelID: hotel.ID}
	applyAddonInput(addon, input, hotel.Currency)

	if err := srv.addonRepo.Create(ctx, addon); err != nil {
		return nil, errors.Wrap(err, "failed to create addon")
	}

	srv.logger.InfoContext(ctx, "addon created",
		slog.String("hotelId", hotel.ID.String()),
		slog.String("addonId", addon.ID.String()),
	)

	return addon, nil
}

// Update replaces the writable fields of an add-on within the resolved hotel.
func (srv *addonService) Update(ctx context.Context, actor usecase.Actor, addonID uuid.UUID, input *usecase.AddonInput) (*entity.Addon, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	addon, err := srv.addonRepo.FindByID(ctx, hotel.ID, addonID)
	if err != nil {
		if errors.Is(err, repository.ErrAddonNotFound) {
			return nil, domainerrors.ErrAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to find addon")
	}

	applyAddonInput(addon, input, hotel.Currency)

	if err := srv.addonRepo.Update(ctx, addon); err != nil {
		if errors.Is(err, repository.ErrAddonNotFound) {
			return nil, domainerrors.ErrAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to update addon")
	}

	return addon, nil
}

// Delete removes an add-on from the resolved hotel.
func (srv *addonService) Delete(ctx context.Context, actor usecase.Actor, addonID uuid.UUID) error {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return err
	}

	if err := srv.addonRepo.Delete(ctx, hotel.ID, addonID); err != nil {
		if errors.Is(err, repository.ErrAddonNotFound) {
			return domainerrors.ErrAddonNotFound
		}

		return errors.Wrap(err, "failed to delete addon")
	}

	return nil
}

func applyAddonInput(addon *entity.Addon, input *usecase.AddonInput, hotelCurrency string) {
	addon.Name = input.Name
	addon.Description = input.Description
	addon.Price = input.Price
	addon.Category = input.Category
	addon.Image = input.Image
	addon.Duration = input.Duration
	addon.PerPerson = input.PerPerson
	addon.SortOrder = input.SortOrder

	addon.Currency = input.Currency
	if addon.Currency == "" {
		addon.Currency = hotelCurrency
	}
}
