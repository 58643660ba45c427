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

// CreateCostInput represents the input for cost entry creation.
type CreateCostInput struct {
	OwnerID    uuid.UUID
	VehicleID  uuid.UUID
	Label      string
	Amount     int64
	Category   entity.CostCategory
	IncurredAt time.Time
}

// CreateCostOutput represents the output of cost entry creation.
type CreateCostOutput struct {
	Cost *entity.CostEntry
}

// CreateCostUseCase handles cost entry creation logic.
type CreateCostUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
}

// NewCreateCostUseCase creates a new CreateCostUseCase instance.
func NewCreateCostUseCase(vehicleRepo adapter.VehicleRepository, costRepo adapter.CostRepository) *CreateCostUseCase {
	return &CreateCostUseCase{vehicleRepo: vehicleRepo, costRepo: costRepo}
}

// Execute records an expense against one of the merchant's vehicles.
func (uc *CreateCostUseCase) Execute(ctx context.Context, input CreateCostInput) (*CreateCostOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	category := input.Category
	if category == "" {
		category = entity.CostCategoryOther
	}

	if err := validateCostFields(input.Label, input.Amount, category); err != nil {
		return nil, err
	}

	incurredAt := input.IncurredAt
	if incurredAt.IsZero() {
		incurredAt = time.Now().UTC()
	}

	cost := entity.NewCostEntry(vehicle.ID, input.Label, input.Amount, category, incurredAt)

	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create cost entry: %w", err)
	}

	return &CreateCostOutput{Cost: cost}, nil
}
