package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addonFixture struct {
	hotels *mockHotelRepo
	addons *mockAddonRepo
	srv    usecase.AddonUsecase
}

func newAddonFixture(t *testing.T) *addonFixture {
	t.Helper()

	f := &addonFixture{hotels: &mockHotelRepo{}, addons: &mockAddonRepo{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.srv = NewAddonService(f.hotels, f.addons, logger)

	return f
}

func TestAddonCreate_CurrencyDefaultsToHotel(t *testing.T) {
	f := newAddonFixture(t)
	user := owner()
	hotel := &entity.Hotel{ID: uuid.New(), OwnerID: user.ID, Currency: "CHF"}
	f.hotels.On("FindFirstByOwner", mock.Anything, user.ID).Return(hotel, nil)
	f.addons.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.srv.Create(context.Background(), usecase.Actor{User: user}, &usecase.AddonInput{
		Name: "Breakfast", Price: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, hotel.ID, got.HotelID)
	assert.Equal(t, "CHF", got.Currency)
	assert.Nil(t, got.PerPerson)
}

func TestAddonUpdate_NotFoundInOtherTenant(t *testing.T) {
	f := newAddonFixture(t)
	user := owner()
	hotel := &entity.Hotel{ID: uuid.New(), OwnerID: user.ID}
	addonID := uuid.New()
	f.hotels.On("FindFirstByOwner", mock.Anything, user.ID).Return(hotel, nil)
	// The repository filters by hotel id, so a foreign addon simply does
	// not exist from this tenant's point of view.
	f.addons.On("FindByID", mock.Anything, hotel.ID, addonID).Return(nil, repository.ErrAddonNotFound)

	_, err := f.srv.Update(context.Background(), usecase.Actor{User: user}, addonID, &usecase.AddonInput{Name: "Spa"})
	assert.ErrorIs(t, err, domainerrors.ErrAddonNotFound)
	f.addons.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddonList_SetupIncompleteWithoutHotel(t *testing.T) {
	f := newAddonFixture(t)
	user := owner()
	f.hotels.On("FindFirstByOwner", mock.Anything, user.ID).Return(nil, repository.ErrHotelNotFound)

	_, err := f.srv.List(context.Background(), usecase.Actor{User: user})
	assert.ErrorIs(t, err, domainerrors.ErrSetupIncomplete)
}

func TestAddonDelete_NotFound(t *testing.T) {
	f := newAddonFixture(t)
	user := owner()
	hotel := &entity.Hotel{ID: uuid.New(), OwnerID: user.ID}
	addonID := uuid.New()
	f.hotels.On("FindFirstByOwner", mock.Anything, user.ID).Return(hotel, nil)
	f.addons.On("Delete", mock.Anything, hotel.ID, addonID).Return(repository.ErrAddonNotFound)

	err := f.srv.Delete(context.Background(), usecase.Actor{User: user}, addonID)
	assert.ErrorIs(t, err, domainerrors.ErrAddonNotFound)
}
