// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotel is the tenant-scoped aggregate of the booking schema. Every hotel is
// owned by exactly one account; an owner may hold any number of hotels. The
// slug is globally unique and is the public lookup key for the booking site.
type Hotel struct {
	ID      uuid.UUID // The global unique identifier for the hotel.
	OwnerID uuid.UUID // The account that owns this hotel.

	Name        string
	Slug        string // Globally unique URL identifier.
	Description string
	Location    string
	Country     string
	StarRating  int

	Currency            string   // Default display currency (ISO 4217).
	SupportedCurrencies []string // Currencies guests may pay in, if more than the default.
	SupportedLanguages  []string // Locales the booking site is offered in.
	Timezone            string

	ContactEmail    string
	ContactPhone    string
	ContactWhatsapp string
	ContactAddress  string

	Social   SocialLinks
	Branding Branding

	HeroImage   string
	HeroHeading string
	HeroSubtext string
	Images      []string
	Amenities   []string

	CheckInTime  string
	CheckOutTime string

	// Operational toggles for the owner's notification preferences.
	EmailNotifications bool
	NewBookingAlerts   bool
	PaymentAlerts      bool
	WeeklyReports      bool

	// Payment and cancellation policy surfaced on the public API.
	PayAtProperty        bool
	FreeCancellationDays int

	// Add-on display settings for the booking site.
	ShowAddons            bool
	GroupAddonsByCategory bool

	// Free-form filter structures rendered by the booking frontend as-is.
	CustomFilters  map[string]any
	BookingFilters map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialLinks holds the hotel's social media URLs.
type SocialLinks struct {
	Facebook  string
	Instagram string
	Twitter   string
	Youtube   string
}

// IsEmpty reports whether no social link is set.
func (s SocialLinks) IsEmpty() bool {
	return s.Facebook == "" && s.Instagram == "" && s.Twitter == "" && s.Youtube == ""
}

// Branding holds the hotel's visual identity settings.
type Branding struct {
	PrimaryColor string
	AccentColor  string
	FontPairing  string
	LogoURL      string
	FaviconURL   string
}

// HotelTranslation is an optional per-locale override of a subset of hotel
// fields, keyed by (hotel, locale). Empty fields fall back to the base record
// field-by-field.
type HotelTranslation struct {
	HotelID        uuid.UUID
	Locale         string
	Name           string
	Description    string
	Location       string
	Country        string
	ContactAddress string
	Amenities      []string
}

// ApplyTo overlays the translation onto a copy of the base hotel, falling
// back per field when the translated value is absent.
func (t *HotelTranslation) ApplyTo(base *Hotel) *Hotel {
	translated := *base
	if t == nil {
		return &translated
	}

	if t.Name != "" {
		translated.Name = t.Name
	}
	if t.Description != "" {
		translated.Description = t.Description
	}
	if t.Location != "" {
		translated.Location = t.Location
	}
	if t.Country != "" {
		translated.Country = t.Country
	}
	if t.ContactAddress != "" {
		translated.ContactAddress = t.ContactAddress
	}
	if len(t.Amenities) > 0 {
		translated.Amenities = t.Amenities
	}

	return &translated
}
