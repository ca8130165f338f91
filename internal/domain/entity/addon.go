// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Addon is a priced extra scoped to a hotel. Every read, write and delete is
// filtered by the owning hotel id, so cross-tenant access is structurally
// impossible rather than merely policy-checked.
type Addon struct {
	ID      uuid.UUID
	HotelID uuid.UUID // Owning hotel; part of every query predicate.

	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	Image       string
	Duration    string // Optional human-readable duration, e.g. "2 hours".
	PerPerson   *bool  // Optional; nil means the hotel never set it.
	SortOrder   int

	CreatedAt time.Time
	UpdatedAt time.Time
}
