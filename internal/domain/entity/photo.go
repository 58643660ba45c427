// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo represents a stored photo reference for a vehicle.
type Photo struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	URL       string
	Position  int
	CreatedAt time.Time
}

// NewPhoto creates a new Photo entity for the given vehicle.
func NewPhoto(vehicleID uuid.UUID, url string, position int) *Photo {
	return &Photo{
		ID:        uuid.New(),
		VehicleID: vehicleID,
		URL:       url,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
}
