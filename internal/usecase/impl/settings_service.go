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

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Defaults applied to a tenant that has not been configured yet.
const (
	defaultTimezone = "UTC"
	defaultCurrency = "EUR"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	tenantResolver

	userRepo  repository.UserRepository
	hotelRepo repository.HotelRepository
	prefill   service.PrefillProvider
	logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	userRepo repository.UserRepository,
	hotelRepo repository.HotelRepository,
	prefill service.PrefillProvider,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		tenantResolver: tenantResolver{hotelRepo: hotelRepo},
		userRepo:       userRepo,
		hotelRepo:      hotelRepo,
		prefill:        prefill,
		logger:         logger,
	}
}

// Me returns the authenticated account.
func (srv *settingsService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListHotels returns the actor's hotels oldest first; superadmins see every
// tenant.
func (srv *settingsService) ListHotels(ctx context.Context, actor usecase.Actor) ([]*entity.Hotel, error) {
	if actor.User.IsSuperadmin() {
		return srv.hotelRepo.List(ctx)
	}

	return srv.hotelRepo.FindByOwner(ctx, actor.User.ID)
}

// ResolveHotel applies the tenant resolution rules.
func (srv *settingsService) ResolveHotel(ctx context.Context, actor usecase.Actor) (*entity.Hotel, error) {
	return srv.resolve(ctx, actor)
}

// GetProperty returns the property settings, or the documented defaults when
// the owner has no hotel yet.
func (srv *settingsService) GetProperty(ctx context.Context, actor usecase.Actor) (*entity.Hotel, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSetupIncomplete) {
			return defaultHotel(actor.User.ID), nil
		}

		return nil, err
	}

	return hotel, nil
}

// PatchProperty updates the property settings. The first write from an owner
// without a hotel creates one, which makes onboarding a single PATCH.
func (srv *settingsService) PatchProperty(ctx context.Context, actor usecase.Actor, patch *usecase.PropertyPatch) (*entity.Hotel, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSetupIncomplete) && actor.HotelID == "" {
			return srv.createFromPatch(ctx, actor.User, patch)
		}

		return nil, err
	}

	repoPatch := propertyPatchToRepo(patch)
	if err := srv.hotelRepo.Patch(ctx, hotel.ID, repoPatch); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return nil, domainerrors.ErrSlugTaken
		}

		return nil, errors.Wrap(err, "failed to patch property settings")
	}

	return srv.reload(ctx, hotel.ID)
}

// GetDesign returns the design settings of the resolved hotel.
func (srv *settingsService) GetDesign(ctx context.Context, actor usecase.Actor) (*entity.Hotel, error) {
	return srv.resolve(ctx, actor)
}

// PatchDesign updates the design settings; it requires an existing hotel.
func (srv *settingsService) PatchDesign(ctx context.Context, actor usecase.Actor, patch *usecase.DesignPatch) (*entity.Hotel, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	repoPatch := &repository.HotelPatch{
		HeroImage:   patch.HeroImage,
		HeroHeading: patch.HeroHeading,
		HeroSubtext: patch.HeroSubtext,
	}
	if patch.PrimaryColor != nil || patch.AccentColor != nil || patch.FontPairing != nil ||
		patch.LogoURL != nil || patch.FaviconURL != nil {
		branding := hotel.Branding
		applyString(&branding.PrimaryColor, patch.PrimaryColor)
		applyString(&branding.AccentColor, patch.AccentColor)
		applyString(&branding.FontPairing, patch.FontPairing)
		applyString(&branding.LogoURL, patch.LogoURL)
		applyString(&branding.FaviconURL, patch.FaviconURL)
		repoPatch.Branding = &branding
	}

	if err := srv.hotelRepo.Patch(ctx, hotel.ID, repoPatch); err != nil {
		return nil, errors.Wrap(err, "failed to patch design settings")
	}

	return srv.reload(ctx, hotel.ID)
}

// GetAddonSettings returns the add-on display settings of the resolved hotel.
func (srv *settingsService) GetAddonSettings(ctx context.Context, actor usecase.Actor) (*entity.Hotel, error) {
	return srv.resolve(ctx, actor)
}

// PatchAddonSettings updates the add-on display settings.
func (srv *settingsService) PatchAddonSettings(ctx context.Context, actor usecase.Actor, patch *usecase.AddonSettingsPatch) (*entity.Hotel, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	repoPatch := &repository.HotelPatch{
		ShowAddons:            patch.ShowAddons,
		GroupAddonsByCategory: patch.GroupAddonsByCategory,
	}
	if err := srv.hotelRepo.Patch(ctx, hotel.ID, repoPatch); err != nil {
		return nil, errors.Wrap(err, "failed to patch addon settings")
	}

	return srv.reload(ctx, hotel.ID)
}

// UpsertTranslation creates or replaces the locale overlay for the resolved
// hotel. Locales are stored lowercase, matching the public lookup.
func (srv *settingsService) UpsertTranslation(ctx context.Context, actor usecase.Actor, locale string, input *usecase.TranslationInput) (*entity.HotelTranslation, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("locale is required")
	}

	translation := &entity.HotelTranslation{
		HotelID:        hotel.ID,
		Locale:         locale,
		Name:           input.Name,
		Description:    input.Description,
		Location:       input.Location,
		Country:        input.Country,
		ContactAddress: input.ContactAddress,
		Amenities:      input.Amenities,
	}
	if err := srv.hotelRepo.UpsertTranslation(ctx, translation); err != nil {
		return nil, errors.Wrap(err, "failed to upsert translation")
	}

	return translation, nil
}

// Onboarding fields surfaced by the setup status endpoint.
const (
	setupFieldPropertyName     = "propertyName"
	setupFieldReservationEmail = "reservationEmail"
	setupFieldPhone            = "phone"
	setupFieldAddress          = "address"
	setupFieldHeroImage        = "heroImage"
)

// GetSetupStatus reports the onboarding checklist with best-effort prefill
// suggestions from the marketplace listing.
func (srv *settingsService) GetSetupStatus(ctx context.Context, actor usecase.Actor) (*usecase.SetupStatus, error) {
	hotel, err := srv.resolve(ctx, actor)
	if err != nil && !errors.Is(err, domainerrors.ErrSetupIncomplete) {
		return nil, err
	}

	// Prefill lookups never block the checklist.
	var prefill *service.HotelPrefill
	if srv.prefill != nil {
		prefill, _ = srv.prefill.ForOwner(ctx, actor.User.ID)
	}

	status := &usecase.SetupStatus{
		HasHotel: hotel != nil,
		Fields:   map[string]usecase.SetupField{},
	}

	var name, email, phone, address, heroImage string
	if hotel != nil {
		name = hotel.Name
		email = hotel.ContactEmail
		phone = hotel.ContactPhone
		address = hotel.ContactAddress
		heroImage = hotel.HeroImage
	}

	var prefillName, prefillImage string
	if prefill != nil {
		prefillName = prefill.Name
		if len(prefill.Images) > 0 {
			prefillImage = prefill.Images[0]
		}
	}

	status.Fields[setupFieldPropertyName] = setupField(name, prefillName)
	status.Fields[setupFieldReservationEmail] = setupField(email, "")
	status.Fields[setupFieldPhone] = setupField(phone, "")
	status.Fields[setupFieldAddress] = setupField(address, "")
	status.Fields[setupFieldHeroImage] = setupField(heroImage, prefillImage)

	status.Complete = true
	for _, field := range status.Fields {
		if !field.Complete {
			status.Complete = false

			break
		}
	}

	return status, nil
}

func setupField(value, prefill string) usecase.SetupField {
	return usecase.SetupField{
		Complete: strings.TrimSpace(value) != "",
		Value:    value,
		Prefill:  prefill,
	}
}

// createFromPatch bootstraps a hotel from the first property PATCH,
// filling the documented defaults for everything the patch leaves out.
func (srv *settingsService) createFromPatch(ctx context.Context, owner *entity.User, patch *usecase.PropertyPatch) (*entity.Hotel, error) {
	hotel := defaultHotel(owner.ID)
	applyPropertyPatch(hotel, patch)

	if hotel.Slug == "" {
		hotel.Slug = slugify(hotel.Name)
	}
	if hotel.Slug == "" {
		hotel.Slug = fallbackSlug(owner.ID)
	}
	if hotel.Name == "" {
		hotel.Name = owner.Name
	}

	if err := srv.hotelRepo.Create(ctx, hotel); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			// One retry with an owner-derived suffix keeps the first write
			// frictionless even when the name collides.
			hotel.Slug = hotel.Slug + "-" + ownerPrefix(owner.ID)
			if err := srv.hotelRepo.Create(ctx, hotel); err != nil {
				return nil, errors.Wrap(err, "failed to create hotel")
			}
		} else {
			return nil, errors.Wrap(err, "failed to create hotel")
		}
	}

	srv.logger.InfoContext(ctx, "hotel created from first property patch",
		slog.String("hotelId", hotel.ID.String()),
		slog.String("ownerId", owner.ID.String()),
	)

	return hotel, nil
}

func (srv *settingsService) reload(ctx context.Context, hotelID uuid.UUID) (*entity.Hotel, error) {
	hotel, err := srv.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload hotel")
	}

	return hotel, nil
}

// defaultHotel is the unconfigured-tenant baseline.
func defaultHotel(ownerID uuid.UUID) *entity.Hotel {
	return &entity.Hotel{
		OwnerID:            ownerID,
		Timezone:           defaultTimezone,
		Currency:           defaultCurrency,
		SupportedLanguages: []string{"en"},
		EmailNotifications: true,
		NewBookingAlerts:   true,
		PaymentAlerts:      true,
		WeeklyReports:      false,
		ShowAddons:         true,
	}
}

// applyPropertyPatch overlays the non-nil patch fields onto the hotel.
func applyPropertyPatch(hotel *entity.Hotel, patch *usecase.PropertyPatch) {
	if patch == nil {
		return
	}

	applyString(&hotel.Name, patch.Name)
	applyString(&hotel.Slug, patch.Slug)
	applyString(&hotel.Description, patch.Description)
	applyString(&hotel.Location, patch.Location)
	applyString(&hotel.Country, patch.Country)
	applyInt(&hotel.StarRating, patch.StarRating)

	applyString(&hotel.Currency, patch.Currency)
	applyString(&hotel.Timezone, patch.Timezone)

	applyString(&hotel.ContactEmail, patch.ContactEmail)
	applyString(&hotel.ContactPhone, patch.ContactPhone)
	applyString(&hotel.ContactWhatsapp, patch.ContactWhatsapp)
	applyString(&hotel.ContactAddress, patch.ContactAddress)

	applyString(&hotel.CheckInTime, patch.CheckInTime)
	applyString(&hotel.CheckOutTime, patch.CheckOutTime)

	applyBool(&hotel.EmailNotifications, patch.EmailNotifications)
	applyBool(&hotel.NewBookingAlerts, patch.NewBookingAlerts)
	applyBool(&hotel.PaymentAlerts, patch.PaymentAlerts)
	applyBool(&hotel.WeeklyReports, patch.WeeklyReports)

	applyBool(&hotel.PayAtProperty, patch.PayAtProperty)
	applyInt(&hotel.FreeCancellationDays, patch.FreeCancellationDays)

	if patch.Social != nil {
		hotel.Social = *patch.Social
	}
	if patch.SupportedCurrencies != nil {
		hotel.SupportedCurrencies = *patch.SupportedCurrencies
	}
	if patch.SupportedLanguages != nil {
		hotel.SupportedLanguages = *patch.SupportedLanguages
	}
	if patch.Images != nil {
		hotel.Images = *patch.Images
	}
	if patch.Amenities != nil {
		hotel.Amenities = *patch.Amenities
	}
	if patch.CustomFilters != nil {
		hotel.CustomFilters = *patch.CustomFilters
	}
	if patch.BookingFilters != nil {
		hotel.BookingFilters = *patch.BookingFilters
	}
}

// propertyPatchToRepo converts the usecase patch into the persistence patch.
func propertyPatchToRepo(patch *usecase.PropertyPatch) *repository.HotelPatch {
	if patch == nil {
		return &repository.HotelPatch{}
	}

	return &repository.HotelPatch{
		Name:                 patch.Name,
		Slug:                 patch.Slug,
		Description:          patch.Description,
		Location:             patch.Location,
		Country:              patch.Country,
		StarRating:           patch.StarRating,
		Currency:             patch.Currency,
		SupportedCurrencies:  patch.SupportedCurrencies,
		SupportedLanguages:   patch.SupportedLanguages,
		Timezone:             patch.Timezone,
		ContactEmail:         patch.ContactEmail,
		ContactPhone:         patch.ContactPhone,
		ContactWhatsapp:      patch.ContactWhatsapp,
		ContactAddress:       patch.ContactAddress,
		Social:               patch.Social,
		Images:               patch.Images,
		Amenities:            patch.Amenities,
		CheckInTime:          patch.CheckInTime,
		CheckOutTime:         patch.CheckOutTime,
		EmailNotifications:   patch.EmailNotifications,
		NewBookingAlerts:     patch.NewBookingAlerts,
		PaymentAlerts:        patch.PaymentAlerts,
		WeeklyReports:        patch.WeeklyReports,
		PayAtProperty:        patch.PayAtProperty,
		FreeCancellationDays: patch.FreeCancellationDays,
		CustomFilters:        patch.CustomFilters,
		BookingFilters:       patch.BookingFilters,
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// slugify lowercases the name and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func fallbackSlug(ownerID uuid.UUID) string {
	return "hotel-" + ownerPrefix(ownerID)
}

func ownerPrefix(ownerID uuid.UUID) string {
	return strings.SplitN(ownerID.String(), "-", 2)[0]
}
