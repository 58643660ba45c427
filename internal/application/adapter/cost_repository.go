// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// CostRepository defines the interface for cost ledger persistence operations.
type CostRepository interface {
	// Create creates a new cost entry in the database.
	Create(ctx context.Context, cost *entity.CostEntry) error

	// FindByVehicle retrieves all cost entries for a vehicle, most recently
	// incurred first.
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.CostEntry, error)

	// FindByVehicles retrieves the cost entries of several vehicles at once,
	// keyed by vehicle ID. Vehicles without costs have no map entry.
	FindByVehicles(ctx context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID][]*entity.CostEntry, error)

	// FindByIDAndVehicle retrieves one cost entry scoped to its vehicle.
	FindByIDAndVehicle(ctx context.Context, id, vehicleID uuid.UUID) (*entity.CostEntry, error)

	// Update updates an existing cost entry in the database.
	Update(ctx context.Context, cost *entity.CostEntry) error

	// Delete removes a cost entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
