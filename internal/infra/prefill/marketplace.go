// Package prefill reads listing data from the marketplace database to seed
// a hotel's initial property settings. The whole package is best-effort: the
// marketplace connection is optional, and any failure degrades to "no
// prefill" rather than blocking setup.
package prefill

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"innkeep/config"
	"innkeep/internal/domain/service"
)

// marketplaceProvider implements service.PrefillProvider against the
// read-only marketplace database.
type marketplaceProvider struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewMarketplaceProvider connects to the marketplace database when one is
// configured. Without a marketplace DSN the provider is inert and always
// reports no prefill data.
func NewMarketplaceProvider(cfg *config.Config, logger *slog.Logger) (service.PrefillProvider, error) {
	if cfg.Database.Marketplace == nil {
		return &marketplaceProvider{logger: logger}, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.Marketplace.DSN()), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect marketplace database")
	}

	return &marketplaceProvider{db: db, logger: logger}, nil
}

// listingRow mirrors the subset of the marketplace 'hotel_listings' table
// used for prefill.
type listingRow struct {
	Name        string
	Description string
	Location    string
	Country     string
	StarRating  int
	Images      []string `gorm:"serializer:json"`
	Amenities   []string `gorm:"serializer:json"`
}

// ForOwner returns prefill data for an account, or nil when none is
// available. Lookup errors are logged and swallowed.
func (p *marketplaceProvider) ForOwner(ctx context.Context, ownerID uuid.UUID) (*service.HotelPrefill, error) {
	if p.db == nil {
		return nil, nil
	}

	var row listingRow
	err := p.db.WithContext(ctx).
		Table("hotel_listings").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && p.logger != nil {
			p.logger.WarnContext(ctx, "marketplace prefill lookup failed",
				slog.String("ownerId", ownerID.String()),
				slog.String("error", err.Error()),
			)
		}

		return nil, nil
	}

	return &service.HotelPrefill{
		Name:        row.Name,
		Description: row.Description,
		Location:    row.Location,
		Country:     row.Country,
		StarRating:  row.StarRating,
		Images:      row.Images,
		Amenities:   row.Amenities,
	}, nil
}
