// Package dashboard contains the profitability dashboard use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// GetDashboardInput represents the input for the dashboard rollup.
type GetDashboardInput struct {
	OwnerID uuid.UUID
	Period  finance.Period
}

// GetDashboardOutput represents the output of the dashboard rollup.
type GetDashboardOutput struct {
	Report *finance.DashboardReport
}

// GetDashboardUseCase handles the dashboard rollup logic.
type GetDashboardUseCase struct {
	vehicleRepo adapter.VehicleRepository
	costRepo    adapter.CostRepository
	clock       adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	vehicleRepo adapter.VehicleRepository,
	costRepo adapter.CostRepository,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		vehicleRepo: vehicleRepo,
		costRepo:    costRepo,
		clock:       clock,
	}
}

// Execute loads the merchant's whole fleet with its cost ledgers and derives
// the dashboard report. Period filtering happens in the rollup, not in the
// query: realized sales must see vehicles outside the window.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	vehicles, err := uc.vehicleRepo.FindOwnedVehicles(ctx, input.OwnerID, entity.VehicleFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	ids := make([]uuid.UUID, len(vehicles))
	for i, v := range vehicles {
		ids[i] = v.ID
	}

	costsByVehicle, err := uc.costRepo.FindByVehicles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost entries: %w", err)
	}

	report, err := finance.ComputeDashboard(
		vehicles,
		costsByVehicle,
		finance.DashboardFilter{Period: input.Period},
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{Report: report}, nil
}
