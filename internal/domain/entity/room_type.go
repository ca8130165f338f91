// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomType is a bookable room category scoped to a hotel.
type RoomType struct {
	ID      uuid.UUID
	HotelID uuid.UUID // Owning hotel; every access is filtered by it.

	Name             string
	Description      string
	ShortDescription string
	MaxOccupancy     int
	Size             int // Floor area in square meters.
	BaseRate         float64
	Currency         string
	Amenities        []string
	Images           []string
	BedType          string
	Features         []string
	TotalRooms       int
	IsActive         bool
	SortOrder        int

	CreatedAt time.Time
	UpdatedAt time.Time
}
