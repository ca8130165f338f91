package usecase

import (
	"context"

	"innkeep/internal/domain/entity"
)

// PaymentSettings is the public subset of a hotel's payment configuration.
type PaymentSettings struct {
	Currency             string   `json:"currency"`
	SupportedCurrencies  []string `json:"supportedCurrencies"`
	PayAtProperty        bool     `json:"payAtProperty"`
	FreeCancellationDays int      `json:"freeCancellationDays"`
}

// ExchangeRatesOutput carries the conversion rates for a hotel's base currency.
type ExchangeRatesOutput struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// PublicUsecase defines the unauthenticated read API consumed by the booking
// frontend. Hotels are addressed by slug; an optional language code selects a
// translation overlay.
type PublicUsecase interface {
	// HotelBySlug returns the hotel with the locale overlay applied when a
	// translation for lang exists.
	HotelBySlug(ctx context.Context, slug, lang string) (*entity.Hotel, error)

	// RoomTypes returns the active room types of a hotel.
	RoomTypes(ctx context.Context, slug string) ([]*entity.RoomType, error)

	// Addons returns the add-ons of a hotel. An empty list is returned when
	// the hotel has disabled the add-on step.
	Addons(ctx context.Context, slug string) ([]*entity.Addon, error)

	// PaymentSettings returns the public payment configuration of a hotel.
	PaymentSettings(ctx context.Context, slug string) (*PaymentSettings, error)

	// ExchangeRates returns conversion rates from the given base currency,
	// defaulting to EUR. Upstream failures degrade to an empty rate map,
	// never an error.
	ExchangeRates(ctx context.Context, base string) (*ExchangeRatesOutput, error)
}
