package handler

import (
	"time"

	"innkeep/internal/domain/entity"
	"innkeep/internal/usecase"
)

// View models returned by the API. Entities are never serialized directly,
// so internal fields like the password hash or the owner's notification
// toggles cannot leak onto the public surface.

type userView struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	MarketingConsent bool      `json:"marketingConsent"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:               u.ID.String(),
		Email:            u.Email,
		Name:             u.Name,
		Type:             u.Type.String(),
		Status:           u.Status.String(),
		MarketingConsent: u.MarketingConsent,
		CreatedAt:        u.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}

	return views
}

type authView struct {
	Token string    `json:"token"`
	User  *userView `json:"user"`
}

func toAuthView(out *usecase.AuthOutput) *authView {
	return &authView{Token: out.Token, User: toUserView(out.User)}
}

type socialLinksView struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

type brandingView struct {
	PrimaryColor string `json:"primaryColor,omitempty"`
	AccentColor  string `json:"accentColor,omitempty"`
	FontPairing  string `json:"fontPairing,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	FaviconURL   string `json:"faviconUrl,omitempty"`
}

// hotelView is the owner-facing settings view.
type hotelView struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Country     string `json:"country,omitempty"`
	StarRating  int    `json:"starRating,omitempty"`

	Currency            string   `json:"currency"`
	SupportedCurrencies []string `json:"supportedCurrencies,omitempty"`
	SupportedLanguages  []string `json:"supportedLanguages,omitempty"`
	Timezone            string   `json:"timezone"`

	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	ContactWhatsapp string `json:"contactWhatsapp,omitempty"`
	ContactAddress  string `json:"contactAddress,omitempty"`

	Social   socialLinksView `json:"social"`
	Branding brandingView    `json:"branding"`

	HeroImage   string   `json:"heroImage,omitempty"`
	HeroHeading string   `json:"heroHeading,omitempty"`
	HeroSubtext string   `json:"heroSubtext,omitempty"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`

	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`

	EmailNotifications bool `json:"emailNotifications"`
	NewBookingAlerts   bool `json:"newBookingAlerts"`
	PaymentAlerts      bool `json:"paymentAlerts"`
	WeeklyReports      bool `json:"weeklyReports"`

	PayAtProperty        bool `json:"payAtProperty"`
	FreeCancellationDays int  `json:"freeCancellationDays"`

	ShowAddons            bool `json:"showAddons"`
	GroupAddonsByCategory bool `json:"groupAddonsByCategory"`

	CustomFilters  map[string]any `json:"customFilters,omitempty"`
	BookingFilters map[string]any `json:"bookingFilters,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func toHotelView(h *entity.Hotel) *hotelView {
	if h == nil {
		return nil
	}

	return &hotelView{
		ID:                    h.ID.String(),
		Slug:                  h.Slug,
		Name:                  h.Name,
		Description:           h.Description,
		Location:              h.Location,
		Country:               h.Country,
		StarRating:            h.StarRating,
		Currency:              h.Currency,
		SupportedCurrencies:   h.SupportedCurrencies,
		SupportedLanguages:    h.SupportedLanguages,
		Timezone:              h.Timezone,
		ContactEmail:          h.ContactEmail,
		ContactPhone:          h.ContactPhone,
		ContactWhatsapp:       h.ContactWhatsapp,
		ContactAddress:        h.ContactAddress,
		Social:                socialLinksView(h.Social),
		Branding:              brandingView(h.Branding),
		HeroImage:             h.HeroImage,
		HeroHeading:           h.HeroHeading,
		HeroSubtext:           h.HeroSubtext,
		Images:                h.Images,
		Amenities:             h.Amenities,
		CheckInTime:           h.CheckInTime,
		CheckOutTime:          h.CheckOutTime,
		EmailNotifications:    h.EmailNotifications,
		NewBookingAlerts:      h.NewBookingAlerts,
		PaymentAlerts:         h.PaymentAlerts,
		WeeklyReports:         h.WeeklyReports,
		PayAtProperty:         h.PayAtProperty,
		FreeCancellationDays:  h.FreeCancellationDays,
		ShowAddons:            h.ShowAddons,
		GroupAddonsByCategory: h.GroupAddonsByCategory,
		CustomFilters:         h.CustomFilters,
		BookingFilters:        h.BookingFilters,
		CreatedAt:             h.CreatedAt,
	}
}

func toHotelViews(hotels []*entity.Hotel) []*hotelView {
	views := make([]*hotelView, 0, len(hotels))
	for _, h := range hotels {
		views = append(views, toHotelView(h))
	}

	return views
}

// publicHotelView is the guest-facing view served by slug. Owner-only fields
// like the notification toggles are left out entirely.
type publicHotelView struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Country     string `json:"country,omitempty"`
	StarRating  int    `json:"starRating,omitempty"`

	Currency           string   `json:"currency"`
	SupportedLanguages []string `json:"supportedLanguages,omitempty"`
	Timezone           string   `json:"timezone"`

	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	ContactWhatsapp string `json:"contactWhatsapp,omitempty"`
	ContactAddress  string `json:"contactAddress,omitempty"`

	Social   socialLinksView `json:"social"`
	Branding brandingView    `json:"branding"`

	HeroImage   string   `json:"heroImage,omitempty"`
	HeroHeading string   `json:"heroHeading,omitempty"`
	HeroSubtext string   `json:"heroSubtext,omitempty"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`

	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`

	ShowAddons            bool `json:"showAddons"`
	GroupAddonsByCategory bool `json:"groupAddonsByCategory"`

	CustomFilters  map[string]any `json:"customFilters,omitempty"`
	BookingFilters map[string]any `json:"bookingFilters,omitempty"`
}

func toPublicHotelView(h *entity.Hotel) *publicHotelView {
	return &publicHotelView{
		Slug:                  h.Slug,
		Name:                  h.Name,
		Description:           h.Description,
		Location:              h.Location,
		Country:               h.Country,
		StarRating:            h.StarRating,
		Currency:              h.Currency,
		SupportedLanguages:    h.SupportedLanguages,
		Timezone:              h.Timezone,
		ContactEmail:          h.ContactEmail,
		ContactPhone:          h.ContactPhone,
		ContactWhatsapp:       h.ContactWhatsapp,
		ContactAddress:        h.ContactAddress,
		Social:                socialLinksView(h.Social),
		Branding:              brandingView(h.Branding),
		HeroImage:             h.HeroImage,
		HeroHeading:           h.HeroHeading,
		HeroSubtext:           h.HeroSubtext,
		Images:                h.Images,
		Amenities:             h.Amenities,
		CheckInTime:           h.CheckInTime,
		CheckOutTime:          h.CheckOutTime,
		ShowAddons:            h.ShowAddons,
		GroupAddonsByCategory: h.GroupAddonsByCategory,
		CustomFilters:         h.CustomFilters,
		BookingFilters:        h.BookingFilters,
	}
}

type roomTypeView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	MaxOccupancy     int       `json:"maxOccupancy"`
	Size             int       `json:"size,omitempty"`
	BaseRate         float64   `json:"baseRate"`
	Currency         string    `json:"currency"`
	Amenities        []string  `json:"amenities,omitempty"`
	Images           []string  `json:"images,omitempty"`
	BedType          string    `json:"bedType,omitempty"`
	Features         []string  `json:"features,omitempty"`
	TotalRooms       int       `json:"totalRooms"`
	IsActive         bool      `json:"isActive"`
	SortOrder        int       `json:"sortOrder"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toRoomTypeView(r *entity.RoomType) *roomTypeView {
	return &roomTypeView{
		ID:               r.ID.String(),
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		MaxOccupancy:     r.MaxOccupancy,
		Size:             r.Size,
		BaseRate:         r.BaseRate,
		Currency:         r.Currency,
		Amenities:        r.Amenities,
		Images:           r.Images,
		BedType:          r.BedType,
		Features:         r.Features,
		TotalRooms:       r.TotalRooms,
		IsActive:         r.IsActive,
		SortOrder:        r.SortOrder,
		CreatedAt:        r.CreatedAt,
	}
}

func toRoomTypeViews(rooms []*entity.RoomType) []*roomTypeView {
	views := make([]*roomTypeView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, toRoomTypeView(r))
	}

	return views
}

type addonView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	Image       string    `json:"image,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	PerPerson   *bool     `json:"perPerson,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toAddonView(a *entity.Addon) *addonView {
	return &addonView{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Currency:    a.Currency,
		Category:    a.Category,
		Image:       a.Image,
		Duration:    a.Duration,
		PerPerson:   a.PerPerson,
		SortOrder:   a.SortOrder,
		CreatedAt:   a.CreatedAt,
	}
}

func toAddonViews(addons []*entity.Addon) []*addonView {
	views := make([]*addonView, 0, len(addons))
	for _, a := range addons {
		views = append(views, toAddonView(a))
	}

	return views
}

// translationView serializes one locale overlay.
type translationView struct {
	Locale         string   `json:"locale"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	Country        string   `json:"country,omitempty"`
	ContactAddress string   `json:"contactAddress,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
}

func toTranslationView(tr *entity.HotelTranslation) *translationView {
	return &translationView{
		Locale:         tr.Locale,
		Name:           tr.Name,
		Description:    tr.Description,
		Location:       tr.Location,
		Country:        tr.Country,
		ContactAddress: tr.ContactAddress,
		Amenities:      tr.Amenities,
	}
}
