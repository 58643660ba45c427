// Package cost contains the cost ledger use cases.
package cost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// ListCostsInput represents the input for cost ledger listing.
type ListCostsInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
}

// ListCostsOutput represents the output of cost ledger listing.
type ListCostsOutput struct {
	Costs []*entity.CostEntry
}

// ListCostsUseCase handles cost ledger listing logic.
type ListCostsUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewListCostsUseCase creates a new ListCostsUseCase instance.
func NewListCostsUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *ListCostsUseCase {
	return &ListCostsUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute lists the cost entries of one of the merchant's vehicles.
func (uc *ListCostsUseCase) Execute(ctx context.Context, input ListCostsInput) (*ListCostsOutput, error) {
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

	return &ListCostsOutput{Costs: costs}, nil
}
