package usecase

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated account a request acts as, together
// with the tenant selection from the X-Hotel-Id header (empty when absent).
type Actor struct {
	User    *entity.User
	HotelID string
}

// PropertyPatch is a partial update of the property settings surface.
// Nil fields are left unchanged.
type PropertyPatch struct {
	Name        *string
	Slug        *string
	Description *string
	Location    *string
	Country     *string
	StarRating  *int

	Currency            *string
	SupportedCurrencies *[]string
	SupportedLanguages  *[]string
	Timezone            *string

	ContactEmail    *string
	ContactPhone    *string
	ContactWhatsapp *string
	ContactAddress  *string

	Social *entity.SocialLinks

	Images    *[]string
	Amenities *[]string

	CheckInTime  *string
	CheckOutTime *string

	EmailNotifications *bool
	NewBookingAlerts   *bool
	PaymentAlerts      *bool
	WeeklyReports      *bool

	PayAtProperty        *bool
	FreeCancellationDays *int

	CustomFilters  *map[string]any
	BookingFilters *map[string]any
}

// DesignPatch is a partial update of the design settings surface.
type DesignPatch struct {
	PrimaryColor *string
	AccentColor  *string
	FontPairing  *string
	LogoURL      *string
	FaviconURL   *string

	HeroImage   *string
	HeroHeading *string
	HeroSubtext *string
}

// AddonSettingsPatch is a partial update of the add-on display settings.
type AddonSettingsPatch struct {
	ShowAddons            *bool
	GroupAddonsByCategory *bool
}

// TranslationInput carries a locale overlay for the hotel's public content.
// Empty fields fall back to the base hotel when the public view is served.
type TranslationInput struct {
	Name           string
	Description    string
	Location       string
	Country        string
	ContactAddress string
	Amenities      []string
}

// SetupField reports one onboarding field: whether the owner has filled it
// in, its current value, and a best-effort suggestion from the marketplace
// listing when one exists.
type SetupField struct {
	Complete bool   `json:"complete"`
	Value    string `json:"value,omitempty"`
	Prefill  string `json:"prefill,omitempty"`
}

// SetupStatus reports how far the owner has come with configuring the tenant.
type SetupStatus struct {
	HasHotel bool                  `json:"hasHotel"`
	Complete bool                  `json:"complete"`
	Fields   map[string]SetupField `json:"fields"`
}

// SettingsUsecase defines the tenant-scoped configuration operations of the
// admin surface. Every operation resolves the acting hotel from the actor:
// the X-Hotel-Id selection when present, the owner's first-created hotel
// otherwise. Superadmins may act on any hotel.
type SettingsUsecase interface {
	// Me returns the authenticated account.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListHotels returns every hotel the actor may act on.
	ListHotels(ctx context.Context, actor Actor) ([]*entity.Hotel, error)

	// ResolveHotel applies the tenant resolution rules and returns the
	// acting hotel.
	ResolveHotel(ctx context.Context, actor Actor) (*entity.Hotel, error)

	GetProperty(ctx context.Context, actor Actor) (*entity.Hotel, error)
	// PatchProperty updates the property settings, creating the hotel on
	// first write when the owner has none yet.
	PatchProperty(ctx context.Context, actor Actor, patch *PropertyPatch) (*entity.Hotel, error)

	GetDesign(ctx context.Context, actor Actor) (*entity.Hotel, error)
	PatchDesign(ctx context.Context, actor Actor, patch *DesignPatch) (*entity.Hotel, error)

	GetAddonSettings(ctx context.Context, actor Actor) (*entity.Hotel, error)
	PatchAddonSettings(ctx context.Context, actor Actor, patch *AddonSettingsPatch) (*entity.Hotel, error)

	// UpsertTranslation creates or replaces the locale overlay served on the
	// public site. Requires an existing hotel.
	UpsertTranslation(ctx context.Context, actor Actor, locale string, input *TranslationInput) (*entity.HotelTranslation, error)

	GetSetupStatus(ctx context.Context, actor Actor) (*SetupStatus, error)
}
