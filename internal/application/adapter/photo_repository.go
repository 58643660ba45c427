// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// PhotoRepository defines the interface for photo reference persistence operations.
type PhotoRepository interface {
	// Create creates a new photo reference in the database.
	Create(ctx context.Context, photo *entity.Photo) error

	// FindByVehicle retrieves all photos for a vehicle ordered by position.
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Photo, error)

	// FindByIDAndVehicle retrieves one photo scoped to its vehicle.
	FindByIDAndVehicle(ctx context.Context, id, vehicleID uuid.UUID) (*entity.Photo, error)

	// Delete removes a photo reference from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
