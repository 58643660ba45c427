// Package cost contains the cost ledger use cases.
package cost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// DeleteCostInput represents the input for cost entry deletion.
type DeleteCostInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
	CostID    uuid.UUID
}

// DeleteCostOutput represents the output of cost entry deletion.
type DeleteCostOutput struct {
	Message string
}

// DeleteCostUseCase handles cost entry deletion logic.
type DeleteCostUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewDeleteCostUseCase creates a new DeleteCostUseCase instance.
func NewDeleteCostUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *DeleteCostUseCase {
	return &DeleteCostUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute removes a cost entry from the merchant's vehicle ledger.
func (uc *DeleteCostUseCase) Execute(ctx context.Context, input DeleteCostInput) (*DeleteCostOutput, error) {
	if _, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID); err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	cost, err := uc.costRepo.FindByIDAndVehicle(ctx, input.CostID, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeCostNotFound,
			"cost entry not found",
			domainerror.ErrCostNotFound,
		)
	}

	if err := uc.costRepo.Delete(ctx, cost.ID); err != nil {
		return nil, fmt.Errorf("failed to delete cost entry: %w", err)
	}

	return &DeleteCostOutput{Message: "cost entry deleted"}, nil
}
