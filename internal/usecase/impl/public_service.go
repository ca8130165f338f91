package impl

import (
	"context"
	"log/slog"
	"strings"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/domain/service"
	"innkeep/internal/usecase"

	"github.com/pkg/errors"
)

// publicService implements the PublicUsecase interface backing the
// unauthenticated booking-site API.
type publicService struct {
	hotelRepo repository.HotelRepository
	roomRepo  repository.RoomTypeRepository
	addonRepo repository.AddonRepository
	rates     service.RateProvider
	logger    *slog.Logger
}

// NewPublicService is the constructor for publicService.
func NewPublicService(
	hotelRepo repository.HotelRepository,
	roomRepo repository.RoomTypeRepository,
	addonRepo repository.AddonRepository,
	rates service.RateProvider,
	logger *slog.Logger,
) usecase.PublicUsecase {
	return &publicService{
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
		addonRepo: addonRepo,
		rates:     rates,
		logger:    logger,
	}
}

// HotelBySlug returns the hotel with the locale overlay applied when a
// translation exists. A missing translation is not an error; the base
// record is served.
func (srv *publicService) HotelBySlug(ctx context.Context, slug, lang string) (*entity.Hotel, error) {
	hotel, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return hotel, nil
	}

	translation, err := srv.hotelRepo.FindTranslation(ctx, hotel.ID, lang)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return hotel, nil
		}

		return nil, errors.Wrap(err, "failed to find translation")
	}

	return translation.ApplyTo(hotel), nil
}

// RoomTypes returns the active room types of a hotel, sorted.
func (srv *publicService) RoomTypes(ctx context.Context, slug string) ([]*entity.RoomType, error) {
	hotel, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return srv.roomRepo.FindActiveByHotel(ctx, hotel.ID)
}

// Addons returns the add-ons of a hotel, or an empty list when the hotel has
// switched the add-on step off.
func (srv *publicService) Addons(ctx context.Context, slug string) ([]*entity.Addon, error) {
	hotel, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !hotel.ShowAddons {
		return []*entity.Addon{}, nil
	}

	return srv.addonRepo.FindByHotel(ctx, hotel.ID)
}

// PaymentSettings returns the public payment configuration of a hotel.
func (srv *publicService) PaymentSettings(ctx context.Context, slug string) (*usecase.PaymentSettings, error) {
	hotel, err := srv.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	supported := hotel.SupportedCurrencies
	if len(supported) == 0 {
		supported = []string{hotel.Currency}
	}

	return &usecase.PaymentSettings{
		Currency:             hotel.Currency,
		SupportedCurrencies:  supported,
		PayAtProperty:        hotel.PayAtProperty,
		FreeCancellationDays: hotel.FreeCancellationDays,
	}, nil
}

// ExchangeRates returns conversion rates from the base currency. The rate
// provider already degrades to an empty map, so this never fails on an
// upstream outage.
func (srv *publicService) ExchangeRates(ctx context.Context, base string) (*usecase.ExchangeRatesOutput, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = defaultCurrency
	}

	rates, err := srv.rates.Rates(ctx, base)
	if err != nil {
		// Fail soft: log and serve whatever we have.
		srv.logger.WarnContext(ctx, "exchange rates unavailable",
			slog.String("base", base),
			slog.String("error", err.Error()),
		)
		rates = map[string]float64{}
	}

	return &usecase.ExchangeRatesOutput{Base: base, Rates: rates}, nil
}

func (srv *publicService) findBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	hotel, err := srv.hotelRepo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by slug")
	}

	return hotel, nil
}
