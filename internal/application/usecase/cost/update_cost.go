// Package cost contains the cost ledger use cases.
package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// UpdateCostInput represents the input for a partial cost entry update.
// Nil fields keep their stored value.
type UpdateCostInput struct {
	OwnerID    uuid.UUID
	VehicleID  uuid.UUID
	CostID     uuid.UUID
	Label      *string
	Amount     *int64
	Category   *entity.CostCategory
	IncurredAt *time.Time
}

// UpdateCostOutput represents the output of a cost entry update.
type UpdateCostOutput struct {
	Cost *entity.CostEntry
}

// UpdateCostUseCase handles cost entry update logic.
type UpdateCostUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewUpdateCostUseCase creates a new UpdateCostUseCase instance.
func NewUpdateCostUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *UpdateCostUseCase {
	return &UpdateCostUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute applies the partial update to a cost entry of the merchant's vehicle.
func (uc *UpdateCostUseCase) Execute(ctx context.Context, input UpdateCostInput) (*UpdateCostOutput, error) {
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

	if input.Label != nil {
		cost.Label = *input.Label
	}
	if input.Amount != nil {
		cost.Amount = *input.Amount
	}
	if input.Category != nil {
		cost.Category = *input.Category
	}
	if input.IncurredAt != nil {
		cost.IncurredAt = *input.IncurredAt
	}

	if err := validateCostFields(cost.Label, cost.Amount, cost.Category); err != nil {
		return nil, err
	}

	if err := uc.costRepo.Update(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to update cost entry: %w", err)
	}

	return &UpdateCostOutput{Cost: cost}, nil
}
