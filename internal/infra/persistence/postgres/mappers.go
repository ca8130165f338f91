package postgres

import (
	"innkeep/internal/domain/entity"
	"innkeep/internal/infra/persistence/model"
)

// Mapping between persistence models and pure domain entities. Repositories
// never leak GORM models past this file.

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Name:               m.Name,
		Type:               entity.UserType(m.Type),
		Status:             entity.UserStatus(m.Status),
		TermsAcceptedAt:    m.TermsAcceptedAt,
		TermsVersion:       m.TermsVersion,
		PrivacyAcceptedAt:  m.PrivacyAcceptedAt,
		PrivacyVersion:     m.PrivacyVersion,
		MarketingConsent:   m.MarketingConsent,
		MarketingConsentAt: m.MarketingConsentAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 u.ID,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Name:               u.Name,
		Type:               u.Type.String(),
		Status:             u.Status.String(),
		TermsAcceptedAt:    u.TermsAcceptedAt,
		TermsVersion:       u.TermsVersion,
		PrivacyAcceptedAt:  u.PrivacyAcceptedAt,
		PrivacyVersion:     u.PrivacyVersion,
		MarketingConsent:   u.MarketingConsent,
		MarketingConsentAt: u.MarketingConsentAt,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func toConsentDomain(m *model.ConsentModel) *entity.ConsentRecord {
	return &entity.ConsentRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.ConsentType(m.ConsentType),
		Given:     m.Given,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
	}
}

func fromConsentDomain(r *entity.ConsentRecord) *model.ConsentModel {
	return &model.ConsentModel{
		ID:          r.ID,
		UserID:      r.UserID,
		ConsentType: string(r.Type),
		Given:       r.Given,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
	}
}

func toResetTokenDomain(m *model.ResetTokenModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}
}

func fromResetTokenDomain(t *entity.PasswordResetToken) *model.ResetTokenModel {
	return &model.ResetTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
}

func toHotelDomain(m *model.HotelModel) *entity.Hotel {
	return &entity.Hotel{
		ID:                  m.ID,
		OwnerID:             m.OwnerID,
		Name:                m.Name,
		Slug:                m.Slug,
		Description:         m.Description,
		Location:            m.Location,
		Country:             m.Country,
		StarRating:          m.StarRating,
		Currency:            m.Currency,
		SupportedCurrencies: m.SupportedCurrencies,
		SupportedLanguages:  m.SupportedLanguages,
		Timezone:            m.Timezone,
		ContactEmail:        m.ContactEmail,
		ContactPhone:        m.ContactPhone,
		ContactWhatsapp:     m.ContactWhatsapp,
		ContactAddress:      m.ContactAddress,
		Social: entity.SocialLinks{
			Facebook:  m.SocialFacebook,
			Instagram: m.SocialInstagram,
			Twitter:   m.SocialTwitter,
			Youtube:   m.SocialYoutube,
		},
		Branding: entity.Branding{
			PrimaryColor: m.PrimaryColor,
			AccentColor:  m.AccentColor,
			FontPairing:  m.FontPairing,
			LogoURL:      m.LogoURL,
			FaviconURL:   m.FaviconURL,
		},
		HeroImage:             m.HeroImage,
		HeroHeading:           m.HeroHeading,
		HeroSubtext:           m.HeroSubtext,
		Images:                m.Images,
		Amenities:             m.Amenities,
		CheckInTime:           m.CheckInTime,
		CheckOutTime:          m.CheckOutTime,
		EmailNotifications:    m.EmailNotifications,
		NewBookingAlerts:      m.NewBookingAlerts,
		PaymentAlerts:         m.PaymentAlerts,
		WeeklyReports:         m.WeeklyReports,
		PayAtProperty:         m.PayAtProperty,
		FreeCancellationDays:  m.FreeCancellationDays,
		ShowAddons:            m.ShowAddons,
		GroupAddonsByCategory: m.GroupAddonsByCategory,
		CustomFilters:         m.CustomFilters,
		BookingFilters:        m.BookingFilters,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func fromHotelDomain(h *entity.Hotel) *model.HotelModel {
	return &model.HotelModel{
		ID:                    h.ID,
		OwnerID:               h.OwnerID,
		Name:                  h.Name,
		Slug:                  h.Slug,
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
		SocialFacebook:        h.Social.Facebook,
		SocialInstagram:       h.Social.Instagram,
		SocialTwitter:         h.Social.Twitter,
		SocialYoutube:         h.Social.Youtube,
		PrimaryColor:          h.Branding.PrimaryColor,
		AccentColor:           h.Branding.AccentColor,
		FontPairing:           h.Branding.FontPairing,
		LogoURL:               h.Branding.LogoURL,
		FaviconURL:            h.Branding.FaviconURL,
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
		UpdatedAt:             h.UpdatedAt,
	}
}

func toTranslationDomain(m *model.HotelTranslationModel) *entity.HotelTranslation {
	return &entity.HotelTranslation{
		HotelID:        m.HotelID,
		Locale:         m.Locale,
		Name:           m.Name,
		Description:    m.Description,
		Location:       m.Location,
		Country:        m.Country,
		ContactAddress: m.ContactAddress,
		Amenities:      m.Amenities,
	}
}

func fromTranslationDomain(t *entity.HotelTranslation) *model.HotelTranslationModel {
	return &model.HotelTranslationModel{
		HotelID:        t.HotelID,
		Locale:         t.Locale,
		Name:           t.Name,
		Description:    t.Description,
		Location:       t.Location,
		Country:        t.Country,
		ContactAddress: t.ContactAddress,
		Amenities:      t.Amenities,
	}
}

func toRoomTypeDomain(m *model.RoomTypeModel) *entity.RoomType {
	return &entity.RoomType{
		ID:               m.ID,
		HotelID:          m.HotelID,
		Name:             m.Name,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		MaxOccupancy:     m.MaxOccupancy,
		Size:             m.Size,
		BaseRate:         m.BaseRate,
		Currency:         m.Currency,
		Amenities:        m.Amenities,
		Images:           m.Images,
		BedType:          m.BedType,
		Features:         m.Features,
		TotalRooms:       m.TotalRooms,
		IsActive:         m.IsActive,
		SortOrder:        m.SortOrder,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromRoomTypeDomain(r *entity.RoomType) *model.RoomTypeModel {
	return &model.RoomTypeModel{
		ID:               r.ID,
		HotelID:          r.HotelID,
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
		UpdatedAt:        r.UpdatedAt,
	}
}

func toAddonDomain(m *model.AddonModel) *entity.Addon {
	return &entity.Addon{
		ID:          m.ID,
		HotelID:     m.HotelID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Currency:    m.Currency,
		Category:    m.Category,
		Image:       m.Image,
		Duration:    m.Duration,
		PerPerson:   m.PerPerson,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromAddonDomain(a *entity.Addon) *model.AddonModel {
	return &model.AddonModel{
		ID:          a.ID,
		HotelID:     a.HotelID,
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
		UpdatedAt:   a.UpdatedAt,
	}
}
