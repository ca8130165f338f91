package postgres

import (
	"context"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hotelRepository implements the domain.HotelRepository interface using GORM.
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository is the constructor for hotelRepository.
func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

// FindByID retrieves a hotel by its unique ID.
func (repo *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hotelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by id")
	}

	return toHotelDomain(&hotelM), nil
}

// FindBySlug retrieves a hotel by its globally unique slug.
func (repo *hotelRepository) FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&hotelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by slug")
	}

	return toHotelDomain(&hotelM), nil
}

// FindByOwner retrieves all hotels owned by an account, oldest first.
func (repo *hotelRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	var models []*model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find hotels by owner")
	}

	hotels := make([]*entity.Hotel, 0, len(models))
	for _, m := range models {
		hotels = append(hotels, toHotelDomain(m))
	}

	return hotels, nil
}

// FindFirstByOwner retrieves the owner's oldest hotel by creation time.
func (repo *hotelRepository) FindFirstByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&hotelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find first hotel by owner")
	}

	return toHotelDomain(&hotelM), nil
}

// Create persists a new hotel.
func (repo *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotelM := fromHotelDomain(hotel)

	if err := repo.db.WithContext(ctx).Create(hotelM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hotel")
	}

	hotel.ID = hotelM.ID
	hotel.CreatedAt = hotelM.CreatedAt
	hotel.UpdatedAt = hotelM.UpdatedAt

	return nil
}

// Patch applies a partial update to a hotel, touching only the set fields.
func (repo *hotelRepository) Patch(ctx context.Context, id uuid.UUID, patch *repository.HotelPatch) error {
	updates := patchColumns(patch)
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.HotelModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to patch hotel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHotelNotFound
	}

	return nil
}

// List retrieves all hotels, newest first.
func (repo *hotelRepository) List(ctx context.Context) ([]*entity.Hotel, error) {
	var models []*model.HotelModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	hotels := make([]*entity.Hotel, 0, len(models))
	for _, m := range models {
		hotels = append(hotels, toHotelDomain(m))
	}

	return hotels, nil
}

// FindTranslation retrieves the translation for a hotel and locale.
func (repo *hotelRepository) FindTranslation(ctx context.Context, hotelID uuid.UUID, locale string) (*entity.HotelTranslation, error) {
	var translationM model.HotelTranslationModel
	err := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND locale = ?", hotelID, locale).
		First(&translationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel translation")
	}

	return toTranslationDomain(&translationM), nil
}

// UpsertTranslation creates or replaces the translation for a hotel and locale.
func (repo *hotelRepository) UpsertTranslation(ctx context.Context, translation *entity.HotelTranslation) error {
	translationM := fromTranslationDomain(translation)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "locale"}},
			UpdateAll: true,
		}).
		Create(translationM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert hotel translation")
	}

	return nil
}

// patchColumns converts the typed patch into a GORM updates map. Nil pointers
// are skipped so unset fields stay untouched.
func patchColumns(patch *repository.HotelPatch) map[string]any {
	updates := map[string]any{}
	if patch == nil {
		return updates
	}

	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setInt := func(column string, value *int) {
		if value != nil {
			updates[column] = *value
		}
	}
	setBool := func(column string, value *bool) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("name", patch.Name)
	setString("slug", patch.Slug)
	setString("description", patch.Description)
	setString("location", patch.Location)
	setString("country", patch.Country)
	setInt("star_rating", patch.StarRating)

	setString("currency", patch.Currency)
	setString("timezone", patch.Timezone)

	setString("contact_email", patch.ContactEmail)
	setString("contact_phone", patch.ContactPhone)
	setString("contact_whatsapp", patch.ContactWhatsapp)
	setString("contact_address", patch.ContactAddress)

	setString("hero_image", patch.HeroImage)
	setString("hero_heading", patch.HeroHeading)
	setString("hero_subtext", patch.HeroSubtext)

	setString("check_in_time", patch.CheckInTime)
	setString("check_out_time", patch.CheckOutTime)

	setBool("email_notifications", patch.EmailNotifications)
	setBool("new_booking_alerts", patch.NewBookingAlerts)
	setBool("payment_alerts", patch.PaymentAlerts)
	setBool("weekly_reports", patch.WeeklyReports)

	setBool("pay_at_property", patch.PayAtProperty)
	setInt("free_cancellation_days", patch.FreeCancellationDays)

	setBool("show_addons", patch.ShowAddons)
	setBool("group_addons_by_category", patch.GroupAddonsByCategory)

	if patch.Social != nil {
		updates["social_facebook"] = patch.Social.Facebook
		updates["social_instagram"] = patch.Social.Instagram
		updates["social_twitter"] = patch.Social.Twitter
		updates["social_youtube"] = patch.Social.Youtube
	}
	if patch.Branding != nil {
		updates["primary_color"] = patch.Branding.PrimaryColor
		updates["accent_color"] = patch.Branding.AccentColor
		updates["font_pairing"] = patch.Branding.FontPairing
		updates["logo_url"] = patch.Branding.LogoURL
		updates["favicon_url"] = patch.Branding.FaviconURL
	}

	// List and map columns go through the json serializer on the model, so
	// they are marshalled here explicitly via typed model columns.
	if patch.SupportedCurrencies != nil {
		updates["supported_currencies"] = jsonColumn(*patch.SupportedCurrencies)
	}
	if patch.SupportedLanguages != nil {
		updates["supported_languages"] = jsonColumn(*patch.SupportedLanguages)
	}
	if patch.Images != nil {
		updates["images"] = jsonColumn(*patch.Images)
	}
	if patch.Amenities != nil {
		updates["amenities"] = jsonColumn(*patch.Amenities)
	}
	if patch.CustomFilters != nil {
		updates["custom_filters"] = jsonColumn(*patch.CustomFilters)
	}
	if patch.BookingFilters != nil {
		updates["booking_filters"] = jsonColumn(*patch.BookingFilters)
	}

	return updates
}
