package handler

import (
	"log/slog"
	"net/http"

	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/response"
	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for tenant settings handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, logger: logger}
}

// Me returns the authenticated account.
func (h *SettingsHandler) Me(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.uc.Me(c.Request().Context(), actor.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// ListHotels returns the hotels the actor may act on.
func (h *SettingsHandler) ListHotels(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	hotels, err := h.uc.ListHotels(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelViews(hotels), "")
}

// GetProperty returns the property settings of the resolved hotel.
func (h *SettingsHandler) GetProperty(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	hotel, err := h.uc.GetProperty(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "")
}

type socialLinksRequest struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`
}

type propertyPatchRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Country     *string `json:"country"`
	StarRating  *int    `json:"starRating" validate:"omitempty,min=0,max=5"`

	Currency            *string   `json:"currency" validate:"omitempty,len=3"`
	SupportedCurrencies *[]string `json:"supportedCurrencies"`
	SupportedLanguages  *[]string `json:"supportedLanguages"`
	Timezone            *string   `json:"timezone"`

	ContactEmail    *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone    *string `json:"contactPhone"`
	ContactWhatsapp *string `json:"contactWhatsapp"`
	ContactAddress  *string `json:"contactAddress"`

	Social *socialLinksRequest `json:"social"`

	Images    *[]string `json:"images"`
	Amenities *[]string `json:"amenities"`

	CheckInTime  *string `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`

	EmailNotifications *bool `json:"emailNotifications"`
	NewBookingAlerts   *bool `json:"newBookingAlerts"`
	PaymentAlerts      *bool `json:"paymentAlerts"`
	WeeklyReports      *bool `json:"weeklyReports"`

	PayAtProperty        *bool `json:"payAtProperty"`
	FreeCancellationDays *int  `json:"freeCancellationDays" validate:"omitempty,min=0"`

	CustomFilters  *map[string]any `json:"customFilters"`
	BookingFilters *map[string]any `json:"bookingFilters"`
}

func (req *propertyPatchRequest) toPatch() *usecase.PropertyPatch {
	patch := &usecase.PropertyPatch{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Description:          req.Description,
		Location:             req.Location,
		Country:              req.Country,
		StarRating:           req.StarRating,
		Currency:             req.Currency,
		SupportedCurrencies:  req.SupportedCurrencies,
		SupportedLanguages:   req.SupportedLanguages,
		Timezone:             req.Timezone,
		ContactEmail:         req.ContactEmail,
		ContactPhone:         req.ContactPhone,
		ContactWhatsapp:      req.ContactWhatsapp,
		ContactAddress:       req.ContactAddress,
		Images:               req.Images,
		Amenities:            req.Amenities,
		CheckInTime:          req.CheckInTime,
		CheckOutTime:         req.CheckOutTime,
		EmailNotifications:   req.EmailNotifications,
		NewBookingAlerts:     req.NewBookingAlerts,
		PaymentAlerts:        req.PaymentAlerts,
		WeeklyReports:        req.WeeklyReports,
		PayAtProperty:        req.PayAtProperty,
		FreeCancellationDays: req.FreeCancellationDays,
		CustomFilters:        req.CustomFilters,
		BookingFilters:       req.BookingFilters,
	}
	if req.Social != nil {
		patch.Social = &entity.SocialLinks{
			Facebook:  req.Social.Facebook,
			Instagram: req.Social.Instagram,
			Twitter:   req.Social.Twitter,
			Youtube:   req.Social.Youtube,
		}
	}

	return patch
}

// PatchProperty updates the property settings; the first write from an owner
// without a hotel creates one.
func (h *SettingsHandler) PatchProperty(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req propertyPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property settings input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hotel, err := h.uc.PatchProperty(c.Request().Context(), actor, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "Property settings updated")
}

// GetDesign returns the design settings of the resolved hotel.
func (h *SettingsHandler) GetDesign(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	hotel, err := h.uc.GetDesign(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "")
}

type designPatchRequest struct {
	PrimaryColor *string `json:"primaryColor"`
	AccentColor  *string `json:"accentColor"`
	FontPairing  *string `json:"fontPairing"`
	LogoURL      *string `json:"logoUrl"`
	FaviconURL   *string `json:"faviconUrl"`

	HeroImage   *string `json:"heroImage"`
	HeroHeading *string `json:"heroHeading"`
	HeroSubtext *string `json:"heroSubtext"`
}

// PatchDesign updates the design settings of the resolved hotel.
func (h *SettingsHandler) PatchDesign(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req designPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid design settings input")
	}

	hotel, err := h.uc.PatchDesign(c.Request().Context(), actor, &usecase.DesignPatch{
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		FontPairing:  req.FontPairing,
		LogoURL:      req.LogoURL,
		FaviconURL:   req.FaviconURL,
		HeroImage:    req.HeroImage,
		HeroHeading:  req.HeroHeading,
		HeroSubtext:  req.HeroSubtext,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "Design settings updated")
}

// GetAddonSettings returns the add-on display settings of the resolved hotel.
func (h *SettingsHandler) GetAddonSettings(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	hotel, err := h.uc.GetAddonSettings(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "")
}

type addonSettingsPatchRequest struct {
	ShowAddons            *bool `json:"showAddons"`
	GroupAddonsByCategory *bool `json:"groupAddonsByCategory"`
}

// PatchAddonSettings updates the add-on display settings.
func (h *SettingsHandler) PatchAddonSettings(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req addonSettingsPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid addon settings input")
	}

	hotel, err := h.uc.PatchAddonSettings(c.Request().Context(), actor, &usecase.AddonSettingsPatch{
		ShowAddons:            req.ShowAddons,
		GroupAddonsByCategory: req.GroupAddonsByCategory,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHotelView(hotel), "Addon settings updated")
}

// GetSetupStatus reports the onboarding checklist of the resolved hotel.
func (h *SettingsHandler) GetSetupStatus(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	status, err := h.uc.GetSetupStatus(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

type translationRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Country        string   `json:"country"`
	ContactAddress string   `json:"contactAddress"`
	Amenities      []string `json:"amenities"`
}

// UpsertTranslation creates or replaces one locale overlay for the hotel's
// public content.
func (h *SettingsHandler) UpsertTranslation(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req translationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid translation input")
	}

	translation, err := h.uc.UpsertTranslation(c.Request().Context(), actor, c.Param("locale"), &usecase.TranslationInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		Country:        req.Country,
		ContactAddress: req.ContactAddress,
		Amenities:      req.Amenities,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTranslationView(translation), "Translation saved")
}
