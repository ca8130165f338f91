package repository

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for hotel persistence.
var (
	// ErrHotelNotFound is returned when a hotel is not found.
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrSlugTaken is returned when a create or update would violate the unique slug constraint.
	ErrSlugTaken = errors.New("hotel slug already taken")
)

// HotelPatch is a partial update of hotel fields. Nil pointers mean
// "leave unchanged"; the persistence layer updates only the set fields.
type HotelPatch struct {
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

	Social   *entity.SocialLinks
	Branding *entity.Branding

	HeroImage   *string
	HeroHeading *string
	HeroSubtext *string
	Images      *[]string
	Amenities   *[]string

	CheckInTime  *string
	CheckOutTime *string

	EmailNotifications *bool
	NewBookingAlerts   *bool
	PaymentAlerts      *bool
	WeeklyReports      *bool

	PayAtProperty        *bool
	FreeCancellationDays *int

	ShowAddons            *bool
	GroupAddonsByCategory *bool

	CustomFilters  *map[string]any
	BookingFilters *map[string]any
}

// HotelRepository defines the operations for hotel persistence.
// Owner-scoped lookups are the tenancy boundary: a caller can only reach a
// hotel through its own id, its owner id, or the public slug.
type HotelRepository interface {
	// FindByID retrieves a hotel by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// FindBySlug retrieves a hotel by its globally unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error)

	// FindByOwner retrieves all hotels owned by an account, oldest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error)

	// FindFirstByOwner retrieves the owner's oldest hotel by creation time.
	// This is the tenant fallback when no hotel id is given on a request.
	FindFirstByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Hotel, error)

	// Create persists a new hotel. Returns ErrSlugTaken on slug collision.
	Create(ctx context.Context, hotel *entity.Hotel) error

	// Patch applies a partial update to a hotel. Returns ErrSlugTaken when
	// the patch renames the slug to one already in use.
	Patch(ctx context.Context, id uuid.UUID, patch *HotelPatch) error

	// List retrieves all hotels, newest first.
	List(ctx context.Context) ([]*entity.Hotel, error)

	// FindTranslation retrieves the translation for a hotel and locale,
	// or ErrHotelNotFound when none exists.
	FindTranslation(ctx context.Context, hotelID uuid.UUID, locale string) (*entity.HotelTranslation, error)

	// UpsertTranslation creates or replaces the translation for a hotel and locale.
	UpsertTranslation(ctx context.Context, translation *entity.HotelTranslation) error
}
