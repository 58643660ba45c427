// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// CreateVehicleInput represents the input for vehicle creation.
type CreateVehicleInput struct {
	OwnerID       uuid.UUID
	Make          string
	Model         string
	Year          int
	PurchasePrice int64
	SalePrice     *int64
	Mileage       int
	Status        entity.VehicleStatus
}

// CreateVehicleOutput represents the output of vehicle creation.
type CreateVehicleOutput struct {
	Vehicle *entity.Vehicle
	Totals  *finance.Totals
}

// CreateVehicleUseCase handles vehicle creation logic.
type CreateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewCreateVehicleUseCase creates a new CreateVehicleUseCase instance.
func NewCreateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute creates a vehicle for the merchant. A brand new vehicle has no
// cost ledger yet, so its totals reduce to the purchase price.
func (uc *CreateVehicleUseCase) Execute(ctx context.Context, input CreateVehicleInput) (*CreateVehicleOutput, error) {
	status := input.Status
	if status == "" {
		status = entity.VehicleStatusInStock
	}

	if err := validateVehicleFields(input.Make, input.Model, input.Year, input.PurchasePrice, input.SalePrice, input.Mileage, status); err != nil {
		return nil, err
	}

	vehicle := entity.NewVehicle(
		input.OwnerID,
		input.Make,
		input.Model,
		input.Year,
		input.PurchasePrice,
		input.SalePrice,
		input.Mileage,
		status,
	)

	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	totals, err := finance.ComputeTotals(vehicle, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	return &CreateVehicleOutput{Vehicle: vehicle, Totals: totals}, nil
}
