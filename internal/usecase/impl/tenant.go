package impl

import (
	"context"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tenantResolver applies the tenant selection rules shared by every
// hotel-scoped admin operation.
type tenantResolver struct {
	hotelRepo repository.HotelRepository
}

// resolve returns the hotel a request acts on. With an explicit hotel id the
// hotel must exist and belong to the actor (superadmins may select any);
// a missing hotel and a foreign hotel are indistinguishable to the caller.
// Without an id the owner's first-created hotel is used. Owners without any
// hotel get the setup-incomplete signal, which is distinct from not-found.
func (r *tenantResolver) resolve(ctx context.Context, actor usecase.Actor) (*entity.Hotel, error) {
	if actor.HotelID != "" {
		hotelID, err := uuid.Parse(actor.HotelID)
		if err != nil {
			return nil, domainerrors.ErrHotelAccessDenied
		}

		hotel, err := r.hotelRepo.FindByID(ctx, hotelID)
		if err != nil {
			if errors.Is(err, repository.ErrHotelNotFound) {
				return nil, domainerrors.ErrHotelAccessDenied
			}

			return nil, errors.Wrap(err, "failed to find hotel")
		}

		if !actor.User.IsSuperadmin() && hotel.OwnerID != actor.User.ID {
			return nil, domainerrors.ErrHotelAccessDenied
		}

		return hotel, nil
	}

	hotel, err := r.hotelRepo.FindFirstByOwner(ctx, actor.User.ID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrSetupIncomplete
		}

		return nil, errors.Wrap(err, "failed to find first hotel")
	}

	return hotel, nil
}
