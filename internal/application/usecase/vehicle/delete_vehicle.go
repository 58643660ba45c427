// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// DeleteVehicleInput represents the input for vehicle deletion.
type DeleteVehicleInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
}

// DeleteVehicleOutput represents the output of vehicle deletion.
type DeleteVehicleOutput struct {
	Message string
}

// DeleteVehicleUseCase handles vehicle deletion logic.
type DeleteVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewDeleteVehicleUseCase creates a new DeleteVehicleUseCase instance.
func NewDeleteVehicleUseCase(vehicleRepo adapter.VehicleRepository) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute removes the vehicle along with its cost entries and photos.
func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, input DeleteVehicleInput) (*DeleteVehicleOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	if err := uc.vehicleRepo.Delete(ctx, vehicle.ID); err != nil {
		return nil, fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return &DeleteVehicleOutput{Message: "vehicle deleted"}, nil
}
