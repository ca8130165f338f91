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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicFixture struct {
	hotels *mockHotelRepo
	rooms  *mockRoomRepo
	addons *mockAddonRepo
	rates  *mockRateProvider
	srv    usecase.PublicUsecase
}

func newPublicFixture(t *testing.T) *publicFixture {
	t.Helper()

	f := &publicFixture{
		hotels: &mockHotelRepo{},
		rooms:  &mockRoomRepo{},
		addons: &mockAddonRepo{},
		rates:  &mockRateProvider{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.srv = NewPublicService(f.hotels, f.rooms, f.addons, f.rates, logger)

	return f
}

func TestHotelBySlug(t *testing.T) {
	hotel := &entity.Hotel{
		ID: uuid.New(), Slug: "seaside", Name: "Seaside",
		Description: "Base description", Location: "Bergen",
	}

	t.Run("unknown slug", func(t *testing.T) {
		f := newPublicFixture(t)
		f.hotels.On("FindBySlug", mock.Anything, "nope").Return(nil, repository.ErrHotelNotFound)

		_, err := f.srv.HotelBySlug(context.Background(), "nope", "")
		assert.ErrorIs(t, err, domainerrors.ErrHotelNotFound)
	})

	t.Run("no language serves base", func(t *testing.T) {
		f := newPublicFixture(t)
		f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)

		got, err := f.srv.HotelBySlug(context.Background(), "seaside", "")
		require.NoError(t, err)
		assert.Equal(t, hotel, got)
		f.hotels.AssertNotCalled(t, "FindTranslation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("translation overlays per field", func(t *testing.T) {
		f := newPublicFixture(t)
		f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)
		f.hotels.On("FindTranslation", mock.Anything, hotel.ID, "de").Return(&entity.HotelTranslation{
			HotelID: hotel.ID, Locale: "de", Name: "Meerblick",
		}, nil)

		got, err := f.srv.HotelBySlug(context.Background(), "seaside", "DE")
		require.NoError(t, err)
		assert.Equal(t, "Meerblick", got.Name)
		// Untranslated fields fall back to the base record.
		assert.Equal(t, "Base description", got.Description)
		assert.Equal(t, "Bergen", got.Location)
	})

	t.Run("missing translation serves base", func(t *testing.T) {
		f := newPublicFixture(t)
		f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)
		f.hotels.On("FindTranslation", mock.Anything, hotel.ID, "fr").Return(nil, repository.ErrHotelNotFound)

		got, err := f.srv.HotelBySlug(context.Background(), "seaside", "fr")
		require.NoError(t, err)
		assert.Equal(t, "Seaside", got.Name)
	})
}

func TestPublicRoomTypes_OnlyActive(t *testing.T) {
	f := newPublicFixture(t)
	hotel := &entity.Hotel{ID: uuid.New(), Slug: "seaside"}
	active := []*entity.RoomType{{ID: uuid.New(), HotelID: hotel.ID, IsActive: true}}
	f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)
	f.rooms.On("FindActiveByHotel", mock.Anything, hotel.ID).Return(active, nil)

	got, err := f.srv.RoomTypes(context.Background(), "seaside")
	require.NoError(t, err)
	assert.Equal(t, active, got)
	f.rooms.AssertNotCalled(t, "FindByHotel", mock.Anything, mock.Anything)
}

func TestPublicAddons_HiddenWhenDisabled(t *testing.T) {
	f := newPublicFixture(t)
	hotel := &entity.Hotel{ID: uuid.New(), Slug: "seaside", ShowAddons: false}
	f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)

	got, err := f.srv.Addons(context.Background(), "seaside")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	f.addons.AssertNotCalled(t, "FindByHotel", mock.Anything, mock.Anything)
}

func TestPaymentSettings_SupportedDefaultsToBase(t *testing.T) {
	f := newPublicFixture(t)
	hotel := &entity.Hotel{
		ID: uuid.New(), Slug: "seaside",
		Currency: "NOK", PayAtProperty: true, FreeCancellationDays: 3,
	}
	f.hotels.On("FindBySlug", mock.Anything, "seaside").Return(hotel, nil)

	got, err := f.srv.PaymentSettings(context.Background(), "seaside")
	require.NoError(t, err)
	assert.Equal(t, "NOK", got.Currency)
	assert.Equal(t, []string{"NOK"}, got.SupportedCurrencies)
	assert.True(t, got.PayAtProperty)
	assert.Equal(t, 3, got.FreeCancellationDays)
}

func TestExchangeRates(t *testing.T) {
	t.Run("base defaults to EUR uppercased", func(t *testing.T) {
		f := newPublicFixture(t)
		f.rates.On("Rates", mock.Anything, "EUR").Return(map[string]float64{"USD": 1.1}, nil)

		got, err := f.srv.ExchangeRates(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "EUR", got.Base)
		assert.Equal(t, 1.1, got.Rates["USD"])
	})

	t.Run("lowercase base normalized", func(t *testing.T) {
		f := newPublicFixture(t)
		f.rates.On("Rates", mock.Anything, "NOK").Return(map[string]float64{"EUR": 0.085}, nil)

		got, err := f.srv.ExchangeRates(context.Background(), "nok")
		require.NoError(t, err)
		assert.Equal(t, "NOK", got.Base)
	})

	t.Run("provider failure degrades to empty map", func(t *testing.T) {
		f := newPublicFixture(t)
		f.rates.On("Rates", mock.Anything, "EUR").Return(nil, errors.New("upstream down"))

		got, err := f.srv.ExchangeRates(context.Background(), "EUR")
		require.NoError(t, err)
		assert.NotNil(t, got.Rates)
		assert.Empty(t, got.Rates)
	})
}
