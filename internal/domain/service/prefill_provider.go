package service

import (
	"context"

	"github.com/google/uuid"
)

// HotelPrefill is the subset of marketplace listing data used to seed a new
// hotel's property settings.
type HotelPrefill struct {
	Name        string
	Description string
	Location    string
	Country     string
	StarRating  int
	Images      []string
	Amenities   []string
}

// PrefillProvider reads listing data from the marketplace database to seed
// initial property settings. The marketplace connection is optional;
// implementations return (nil, nil) when it is not configured or when no
// listing matches the owner.
type PrefillProvider interface {
	// ForOwner returns prefill data for an account, or nil when none is available.
	ForOwner(ctx context.Context, ownerID uuid.UUID) (*HotelPrefill, error)
}
