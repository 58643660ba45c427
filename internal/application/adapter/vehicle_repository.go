// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
// Every lookup is owner-scoped: a vehicle belonging to another merchant
// behaves exactly like a missing row.
type VehicleRepository interface {
	// Create creates a new vehicle in the database.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// FindOwned retrieves a vehicle by ID for the given owner.
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*entity.Vehicle, error)

	// FindOwnedVehicles retrieves the owner's vehicles matching the filter,
	// newest first.
	FindOwnedVehicles(ctx context.Context, ownerID uuid.UUID, filter entity.VehicleFilter) ([]*entity.Vehicle, error)

	// Update updates an existing vehicle in the database.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// Delete removes a vehicle and, via cascade, its cost entries and photos.
	Delete(ctx context.Context, id uuid.UUID) error
}
