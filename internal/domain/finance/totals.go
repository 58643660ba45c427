// Package finance implements the financial aggregation core: per-vehicle
// cost/margin totals and the dashboard rollup. Every function here is a pure,
// stateless projection over rows fetched by the caller; nothing in this
// package mutates persisted state. All monetary values are integer minor
// currency units (cents).
package finance

import (
	"fmt"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// Totals holds the derived financial figures for a single vehicle.
// Margin is nil when the vehicle has no sale price: no margin is computable
// without a sale price, and absent is not the same as zero.
type Totals struct {
	TotalCost     int64
	VariableCosts int64
	Margin        *int64
}

// ComputeTotals derives total cost and margin from a vehicle and its cost
// entries. All costs must reference the given vehicle; filtering is the
// caller's responsibility and a mismatch fails fast rather than producing a
// wrong number.
func ComputeTotals(vehicle *entity.Vehicle, costs []*entity.CostEntry) (*Totals, error) {
	if err := validateVehicleAmounts(vehicle); err != nil {
		return nil, err
	}

	variableCosts, err := sumCosts(vehicle, costs)
	if err != nil {
		return nil, err
	}

	totals := &Totals{
		VariableCosts: variableCosts,
		TotalCost:     vehicle.PurchasePrice + variableCosts,
	}

	if vehicle.SalePrice != nil {
		margin := *vehicle.SalePrice - totals.TotalCost
		totals.Margin = &margin
	}

	return totals, nil
}

// sumCosts sums the cost entries after checking that each one belongs to the
// vehicle and is non-negative.
func sumCosts(vehicle *entity.Vehicle, costs []*entity.CostEntry) (int64, error) {
	var sum int64
	for _, c := range costs {
		if c.VehicleID != vehicle.ID {
			return 0, domainerror.NewFinanceError(
				domainerror.ErrCodeCostVehicleMismatch,
				fmt.Sprintf("cost entry %s references vehicle %s, not %s", c.ID, c.VehicleID, vehicle.ID),
				domainerror.ErrCostVehicleMismatch,
			)
		}
		if c.Amount < 0 {
			return 0, domainerror.NewFinanceError(
				domainerror.ErrCodeNegativeAmount,
				fmt.Sprintf("cost entry %s has negative amount %d", c.ID, c.Amount),
				domainerror.ErrNegativeAmount,
			)
		}
		sum += c.Amount
	}
	return sum, nil
}

func validateVehicleAmounts(vehicle *entity.Vehicle) error {
	if vehicle.PurchasePrice < 0 {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			fmt.Sprintf("vehicle %s has negative purchase price %d", vehicle.ID, vehicle.PurchasePrice),
			domainerror.ErrNegativeAmount,
		)
	}
	if vehicle.SalePrice != nil && *vehicle.SalePrice < 0 {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			fmt.Sprintf("vehicle %s has negative sale price %d", vehicle.ID, *vehicle.SalePrice),
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}
