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

// ListVehiclesInput represents the input for vehicle listing.
type ListVehiclesInput struct {
	OwnerID uuid.UUID
	Status  string
	Make    string
}

// VehicleWithTotals pairs a vehicle with its derived financial figures.
type VehicleWithTotals struct {
	Vehicle *entity.Vehicle
	Totals  *finance.Totals
}

// ListVehiclesOutput represents the output of vehicle listing.
type ListVehiclesOutput struct {
	Vehicles []VehicleWithTotals
}

// ListVehiclesUseCase handles vehicle listing logic.
type ListVehiclesUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewListVehiclesUseCase creates a new ListVehiclesUseCase instance.
func NewListVehiclesUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute lists the merchant's vehicles with totals embedded. Costs are
// loaded in one batch query rather than per vehicle.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context, input ListVehiclesInput) (*ListVehiclesOutput, error) {
	filter := entity.VehicleFilter{Make: input.Make}
	if input.Status != "" {
		status := entity.VehicleStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerror.NewVehicleError(
				domainerror.ErrCodeInvalidVehicleStatus,
				"unknown vehicle status",
				domainerror.ErrInvalidVehicleStatus,
			)
		}
		filter.Status = &status
	}

	vehicles, err := uc.vehicleRepo.FindOwnedVehicles(ctx, input.OwnerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	ids := make([]uuid.UUID, len(vehicles))
	for i, v := range vehicles {
		ids[i] = v.ID
	}

	costsByVehicle, err := uc.costRepo.FindByVehicles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost entries: %w", err)
	}

	out := &ListVehiclesOutput{Vehicles: make([]VehicleWithTotals, 0, len(vehicles))}
	for _, v := range vehicles {
		totals, err := finance.ComputeTotals(v, costsByVehicle[v.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to compute totals for vehicle %s: %w", v.ID, err)
		}
		out.Vehicles = append(out.Vehicles, VehicleWithTotals{Vehicle: v, Totals: totals})
	}

	return out, nil
}
