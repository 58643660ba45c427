// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// GetVehicleInput represents the input for a single vehicle lookup.
type GetVehicleInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
}

// GetVehicleOutput represents the output of a single vehicle lookup.
type GetVehicleOutput struct {
	Vehicle *entity.Vehicle
	Costs   []*entity.CostEntry
	Photos  []*entity.Photo
	Totals  *finance.Totals
}

// GetVehicleUseCase handles single vehicle retrieval logic.
type GetVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
	photoRepo   adapter.PhotoRepository
}

// NewGetVehicleUseCase creates a new GetVehicleUseCase instance.
func NewGetVehicleUseCase(
	vehicleRepo adapter.VehicleRepository,
	costRepo adapter.CostRepository,
	photoRepo adapter.PhotoRepository,
) *GetVehicleUseCase {
	return &GetVehicleUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo, photoRepo: photoRepo}
}

// Execute retrieves a vehicle with its cost ledger, photos and totals.
func (uc *GetVehicleUseCase) Execute(ctx context.Context, input GetVehicleInput) (*GetVehicleOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	costs, err := uc.costRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost entries: %w", err)
	}

	photos, err := uc.photoRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}

	totals, err := finance.ComputeTotals(vehicle, costs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	return &GetVehicleOutput{
		Vehicle: vehicle,
		Costs:   costs,
		Photos:  photos,
		Totals:  totals,
	}, nil
}
