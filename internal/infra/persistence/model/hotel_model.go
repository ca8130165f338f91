package model

import (
	"time"

	"github.com/google/uuid"
)

// HotelModel mirrors the 'hotels' table in the booking schema. List and map
// columns are stored as jsonb through GORM's json serializer.
type HotelModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);unique;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"type:varchar(255)"`
	Country     string `gorm:"type:varchar(100)"`
	StarRating  int

	Currency            string   `gorm:"type:varchar(3);not null;default:'EUR'"`
	SupportedCurrencies []string `gorm:"serializer:json;type:jsonb"`
	SupportedLanguages  []string `gorm:"serializer:json;type:jsonb"`
	Timezone            string   `gorm:"type:varchar(64);not null;default:'UTC'"`

	ContactEmail    string `gorm:"type:varchar(255)"`
	ContactPhone    string `gorm:"type:varchar(50)"`
	ContactWhatsapp string `gorm:"type:varchar(50)"`
	ContactAddress  string `gorm:"type:text"`

	SocialFacebook  string `gorm:"type:varchar(255)"`
	SocialInstagram string `gorm:"type:varchar(255)"`
	SocialTwitter   string `gorm:"type:varchar(255)"`
	SocialYoutube   string `gorm:"type:varchar(255)"`

	PrimaryColor string `gorm:"type:varchar(20)"`
	AccentColor  string `gorm:"type:varchar(20)"`
	FontPairing  string `gorm:"type:varchar(100)"`
	LogoURL      string `gorm:"type:varchar(512)"`
	FaviconURL   string `gorm:"type:varchar(512)"`

	HeroImage   string   `gorm:"type:varchar(512)"`
	HeroHeading string   `gorm:"type:varchar(255)"`
	HeroSubtext string   `gorm:"type:text"`
	Images      []string `gorm:"serializer:json;type:jsonb"`
	Amenities   []string `gorm:"serializer:json;type:jsonb"`

	CheckInTime  string `gorm:"type:varchar(10)"`
	CheckOutTime string `gorm:"type:varchar(10)"`

	EmailNotifications bool `gorm:"not null;default:true"`
	NewBookingAlerts   bool `gorm:"not null;default:true"`
	PaymentAlerts      bool `gorm:"not null;default:true"`
	WeeklyReports      bool `gorm:"not null;default:false"`

	PayAtProperty        bool `gorm:"not null;default:false"`
	FreeCancellationDays int

	ShowAddons            bool `gorm:"not null;default:true"`
	GroupAddonsByCategory bool `gorm:"not null;default:false"`

	CustomFilters  map[string]any `gorm:"serializer:json;type:jsonb"`
	BookingFilters map[string]any `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}

// HotelTranslationModel mirrors the 'hotel_translations' table,
// keyed by (hotel_id, locale).
type HotelTranslationModel struct {
	HotelID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Locale         string    `gorm:"type:varchar(10);primaryKey"`
	Name           string    `gorm:"type:varchar(255)"`
	Description    string    `gorm:"type:text"`
	Location       string    `gorm:"type:varchar(255)"`
	Country        string    `gorm:"type:varchar(100)"`
	ContactAddress string    `gorm:"type:text"`
	Amenities      []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (HotelTranslationModel) TableName() string {
	return "hotel_translations"
}

// RoomTypeModel mirrors the 'room_types' table in the booking schema.
type RoomTypeModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HotelID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name             string `gorm:"type:varchar(255);not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"type:varchar(512)"`
	MaxOccupancy     int    `gorm:"not null;default:2"`
	Size             int
	BaseRate         float64  `gorm:"not null"`
	Currency         string   `gorm:"type:varchar(3)"`
	Amenities        []string `gorm:"serializer:json;type:jsonb"`
	Images           []string `gorm:"serializer:json;type:jsonb"`
	BedType          string   `gorm:"type:varchar(100)"`
	Features         []string `gorm:"serializer:json;type:jsonb"`
	TotalRooms       int      `gorm:"not null;default:1"`
	IsActive         bool     `gorm:"not null;default:true"`
	SortOrder        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomTypeModel) TableName() string {
	return "room_types"
}

// AddonModel mirrors the 'addons' table in the booking schema.
type AddonModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HotelID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Currency    string  `gorm:"type:varchar(3)"`
	Category    string  `gorm:"type:varchar(100)"`
	Image       string  `gorm:"type:varchar(512)"`
	Duration    string  `gorm:"type:varchar(100)"`
	PerPerson   *bool
	SortOrder   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddonModel) TableName() string {
	return "addons"
}
