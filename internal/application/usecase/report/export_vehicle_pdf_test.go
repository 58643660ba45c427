// Package report contains the vehicle report export use case.
package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/domain/finance"
)

type fakeVehicleRepo struct {
	vehicle *entity.Vehicle
}

func (r *fakeVehicleRepo) Create(_ context.Context, _ *entity.Vehicle) error { return nil }

func (r *fakeVehicleRepo) FindOwned(_ context.Context, id, ownerID uuid.UUID) (*entity.Vehicle, error) {
	if r.vehicle != nil && r.vehicle.ID == id && r.vehicle.OwnerID == ownerID {
		return r.vehicle, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeVehicleRepo) FindOwnedVehicles(_ context.Context, _ uuid.UUID, _ entity.VehicleFilter) ([]*entity.Vehicle, error) {
	return nil, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, _ *entity.Vehicle) error { return nil }

func (r *fakeVehicleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeCostRepo struct {
	costs []*entity.CostEntry
}

func (r *fakeCostRepo) Create(_ context.Context, _ *entity.CostEntry) error { return nil }

func (r *fakeCostRepo) FindByVehicle(_ context.Context, _ uuid.UUID) ([]*entity.CostEntry, error) {
	return r.costs, nil
}

func (r *fakeCostRepo) FindByVehicles(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]*entity.CostEntry, error) {
	return nil, nil
}

func (r *fakeCostRepo) FindByIDAndVehicle(_ context.Context, _, _ uuid.UUID) (*entity.CostEntry, error) {
	return nil, errors.New("record not found")
}

func (r *fakeCostRepo) Update(_ context.Context, _ *entity.CostEntry) error { return nil }

func (r *fakeCostRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakePhotoRepo struct {
	photos []*entity.Photo
}

func (r *fakePhotoRepo) Create(_ context.Context, _ *entity.Photo) error { return nil }

func (r *fakePhotoRepo) FindByVehicle(_ context.Context, _ uuid.UUID) ([]*entity.Photo, error) {
	return r.photos, nil
}

func (r *fakePhotoRepo) FindByIDAndVehicle(_ context.Context, _, _ uuid.UUID) (*entity.Photo, error) {
	return nil, errors.New("record not found")
}

func (r *fakePhotoRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func int64Ptr(v int64) *int64 { return &v }

func TestExportVehiclePDF(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "Volvo", "V40", 2018, 900_000, int64Ptr(1_250_000), 60_000, entity.VehicleStatusInStock)

	costs := []*entity.CostEntry{
		entity.NewCostEntry(v.ID, "import transport", 45_000, entity.CostCategoryTransport, time.Now()),
		entity.NewCostEntry(v.ID, "timing belt", 60_000, entity.CostCategoryRepair, time.Now()),
	}
	photos := []*entity.Photo{
		entity.NewPhoto(v.ID, "https://cdn.example.com/v40-1.jpg", 0),
		entity.NewPhoto(v.ID, "https://cdn.example.com/v40-2.jpg", 1),
	}

	uc := NewExportVehiclePDFUseCase(
		&fakeVehicleRepo{vehicle: v},
		&fakeCostRepo{costs: costs},
		&fakePhotoRepo{photos: photos},
	)

	t.Run("renders a pdf document", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ExportVehiclePDFInput{OwnerID: ownerID, VehicleID: v.ID})
		require.NoError(t, err)

		assert.Equal(t, "vehicle-"+v.ID.String()+".pdf", out.FileName)
		assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF")), "output should start with a pdf header")
	})

	t.Run("identity block lists status, mileage and prices", func(t *testing.T) {
		rows := identityRows(v)

		assert.Equal(t, []sheetRow{
			{Label: "Status", Value: "in_stock"},
			{Label: "Mileage", Value: "60000 km"},
			{Label: "Purchase price", Value: "9000.00 EUR"},
			{Label: "Sale price", Value: "12500.00 EUR"},
		}, rows)
	})

	t.Run("summary block lists variable costs, total cost and margin", func(t *testing.T) {
		totals, err := finance.ComputeTotals(v, costs)
		require.NoError(t, err)

		rows := totalsRows(totals)

		assert.Equal(t, []sheetRow{
			{Label: "Variable costs", Value: "1050.00 EUR"},
			{Label: "Total cost", Value: "10050.00 EUR"},
			{Label: "Margin", Value: "2450.00 EUR"},
		}, rows)
	})

	t.Run("missing sale price renders as not available", func(t *testing.T) {
		unsold := entity.NewVehicle(ownerID, "Volvo", "V40", 2018, 900_000, nil, 60_000, entity.VehicleStatusInStock)

		totals, err := finance.ComputeTotals(unsold, nil)
		require.NoError(t, err)

		assert.Equal(t, "N/A", identityRows(unsold)[3].Value)
		assert.Equal(t, "N/A", totalsRows(totals)[2].Value)
	})

	t.Run("vehicle of another merchant is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ExportVehiclePDFInput{OwnerID: uuid.New(), VehicleID: v.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrVehicleNotFound)
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1250000.00 EUR", formatMoney(125_000_000))
	assert.Equal(t, "0.05 EUR", formatMoney(5))
	assert.Equal(t, "-12.34 EUR", formatMoney(-1234))
}
