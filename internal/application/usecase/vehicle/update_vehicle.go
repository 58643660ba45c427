// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// UpdateVehicleInput represents the input for a partial vehicle update.
// Nil fields keep their stored value. Marking a vehicle sold is a status
// update like any other.
type UpdateVehicleInput struct {
	OwnerID       uuid.UUID
	VehicleID     uuid.UUID
	Make          *string
	Model         *string
	Year          *int
	PurchasePrice *int64
	SalePrice     *int64
	ClearSale     bool // withdraw a previously quoted sale price
	Mileage       *int
	Status        *entity.VehicleStatus
}

// UpdateVehicleOutput represents the output of a vehicle update.
type UpdateVehicleOutput struct {
	Vehicle *entity.Vehicle
	Totals  *finance.Totals
}

// UpdateVehicleUseCase handles vehicle update logic.
type UpdateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewUpdateVehicleUseCase creates a new UpdateVehicleUseCase instance.
func NewUpdateVehicleUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute applies the partial update and returns the vehicle with fresh totals.
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, input UpdateVehicleInput) (*UpdateVehicleOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.PurchasePrice != nil {
		vehicle.PurchasePrice = *input.PurchasePrice
	}
	if input.SalePrice != nil {
		vehicle.SalePrice = input.SalePrice
	} else if input.ClearSale {
		vehicle.SalePrice = nil
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}
	vehicle.UpdatedAt = time.Now().UTC()

	if err := validateVehicleFields(vehicle.Make, vehicle.Model, vehicle.Year, vehicle.PurchasePrice, vehicle.SalePrice, vehicle.Mileage, vehicle.Status); err != nil {
		return nil, err
	}

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	costs, err := uc.costRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost entries: %w", err)
	}

	totals, err := finance.ComputeTotals(vehicle, costs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	return &UpdateVehicleOutput{Vehicle: vehicle, Totals: totals}, nil
}
