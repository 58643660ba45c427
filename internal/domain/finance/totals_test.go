// Package finance implements the financial aggregation core.
package finance

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

func ptr(v int64) *int64 {
	return &v
}

func testVehicle(purchase int64, sale *int64) *entity.Vehicle {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &entity.Vehicle{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Make:          "Renault",
		Model:         "Clio",
		Year:          2019,
		PurchasePrice: purchase,
		SalePrice:     sale,
		Mileage:       85000,
		Status:        entity.VehicleStatusInStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func testCost(vehicleID uuid.UUID, amount int64) *entity.CostEntry {
	return &entity.CostEntry{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		Label:      "test cost",
		Amount:     amount,
		Category:   entity.CostCategoryRepair,
		IncurredAt: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		purchase      int64
		sale          *int64
		costAmounts   []int64
		wantVariable  int64
		wantTotalCost int64
		wantMargin    *int64
	}{
		{
			name:          "no costs no sale price",
			purchase:      500_000,
			costAmounts:   nil,
			wantVariable:  0,
			wantTotalCost: 500_000,
			wantMargin:    nil,
		},
		{
			name:          "costs sum into total cost",
			purchase:      1_000_000,
			costAmounts:   []int64{200_000, 50_000},
			wantVariable:  250_000,
			wantTotalCost: 1_250_000,
			wantMargin:    nil,
		},
		{
			name:          "margin from sale price",
			purchase:      1_000_000,
			sale:          ptr(1_500_000),
			costAmounts:   []int64{200_000},
			wantVariable:  200_000,
			wantTotalCost: 1_200_000,
			wantMargin:    ptr(300_000),
		},
		{
			name:          "negative margin is reported as is",
			purchase:      1_000_000,
			sale:          ptr(900_000),
			costAmounts:   []int64{200_000},
			wantVariable:  200_000,
			wantTotalCost: 1_200_000,
			wantMargin:    ptr(-300_000),
		},
		{
			name:          "zero sale price yields margin not absence",
			purchase:      100,
			sale:          ptr(0),
			costAmounts:   nil,
			wantVariable:  0,
			wantTotalCost: 100,
			wantMargin:    ptr(-100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := testVehicle(tt.purchase, tt.sale)
			costs := make([]*entity.CostEntry, 0, len(tt.costAmounts))
			for _, amount := range tt.costAmounts {
				costs = append(costs, testCost(vehicle.ID, amount))
			}

			totals, err := ComputeTotals(vehicle, costs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if totals.VariableCosts != tt.wantVariable {
				t.Errorf("VariableCosts = %d, want %d", totals.VariableCosts, tt.wantVariable)
			}
			if totals.TotalCost != tt.wantTotalCost {
				t.Errorf("TotalCost = %d, want %d", totals.TotalCost, tt.wantTotalCost)
			}
			switch {
			case tt.wantMargin == nil && totals.Margin != nil:
				t.Errorf("Margin = %d, want absent", *totals.Margin)
			case tt.wantMargin != nil && totals.Margin == nil:
				t.Errorf("Margin absent, want %d", *tt.wantMargin)
			case tt.wantMargin != nil && *totals.Margin != *tt.wantMargin:
				t.Errorf("Margin = %d, want %d", *totals.Margin, *tt.wantMargin)
			}
		})
	}
}

func TestComputeTotalsIsDeterministic(t *testing.T) {
	vehicle := testVehicle(1_000_000, ptr(1_500_000))
	costs := []*entity.CostEntry{testCost(vehicle.ID, 200_000), testCost(vehicle.ID, 1)}

	first, err := ComputeTotals(vehicle, costs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeTotals(vehicle, costs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.TotalCost != second.TotalCost ||
		first.VariableCosts != second.VariableCosts ||
		*first.Margin != *second.Margin {
		t.Errorf("repeated call differs: %+v vs %+v", first, second)
	}
}

func TestComputeTotalsRejectsForeignCost(t *testing.T) {
	vehicle := testVehicle(1_000_000, nil)
	foreign := testCost(uuid.New(), 100)

	_, err := ComputeTotals(vehicle, []*entity.CostEntry{foreign})
	if !errors.Is(err, domainerror.ErrCostVehicleMismatch) {
		t.Fatalf("expected ErrCostVehicleMismatch, got %v", err)
	}

	var finErr *domainerror.FinanceError
	if !errors.As(err, &finErr) {
		t.Fatalf("expected *FinanceError, got %T", err)
	}
	if finErr.Code != domainerror.ErrCodeCostVehicleMismatch {
		t.Errorf("Code = %s, want %s", finErr.Code, domainerror.ErrCodeCostVehicleMismatch)
	}
}

func TestComputeTotalsRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name       string
		vehicle    *entity.Vehicle
		costAmount *int64
	}{
		{
			name:       "negative cost amount",
			vehicle:    testVehicle(1_000, nil),
			costAmount: ptr(-100),
		},
		{
			name:    "negative purchase price",
			vehicle: testVehicle(-1, nil),
		},
		{
			name:    "negative sale price",
			vehicle: testVehicle(1_000, ptr(-500)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var costs []*entity.CostEntry
			if tt.costAmount != nil {
				costs = []*entity.CostEntry{testCost(tt.vehicle.ID, *tt.costAmount)}
			}

			_, err := ComputeTotals(tt.vehicle, costs)
			if !errors.Is(err, domainerror.ErrNegativeAmount) {
				t.Fatalf("expected ErrNegativeAmount, got %v", err)
			}
		})
	}
}
