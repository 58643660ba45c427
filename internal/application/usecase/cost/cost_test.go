// Package cost contains the cost ledger use cases.
package cost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo(vehicles ...*entity.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
	for _, v := range vehicles {
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) FindOwned(_ context.Context, id, ownerID uuid.UUID) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok || v.OwnerID != ownerID {
		return nil, errors.New("record not found")
	}
	return v, nil
}

func (r *fakeVehicleRepo) FindOwnedVehicles(_ context.Context, ownerID uuid.UUID, _ entity.VehicleFilter) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vehicles, id)
	return nil
}

type fakeCostRepo struct {
	costs map[uuid.UUID][]*entity.CostEntry
}

func newFakeCostRepo() *fakeCostRepo {
	return &fakeCostRepo{costs: make(map[uuid.UUID][]*entity.CostEntry)}
}

func (r *fakeCostRepo) Create(_ context.Context, c *entity.CostEntry) error {
	r.costs[c.VehicleID] = append(r.costs[c.VehicleID], c)
	return nil
}

func (r *fakeCostRepo) FindByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*entity.CostEntry, error) {
	return r.costs[vehicleID], nil
}

func (r *fakeCostRepo) FindByVehicles(_ context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID][]*entity.CostEntry, error) {
	out := make(map[uuid.UUID][]*entity.CostEntry)
	for _, id := range vehicleIDs {
		if cs, ok := r.costs[id]; ok {
			out[id] = cs
		}
	}
	return out, nil
}

func (r *fakeCostRepo) FindByIDAndVehicle(_ context.Context, id, vehicleID uuid.UUID) (*entity.CostEntry, error) {
	for _, c := range r.costs[vehicleID] {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeCostRepo) Update(_ context.Context, c *entity.CostEntry) error {
	for i, existing := range r.costs[c.VehicleID] {
		if existing.ID == c.ID {
			r.costs[c.VehicleID][i] = c
		}
	}
	return nil
}

func (r *fakeCostRepo) Delete(_ context.Context, id uuid.UUID) error {
	for vid, cs := range r.costs {
		for i, c := range cs {
			if c.ID == id {
				r.costs[vid] = append(cs[:i], cs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func TestCreateCost(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "Opel", "Corsa", 2019, 500_000, nil, 60_000, entity.VehicleStatusInStock)

	t.Run("records an expense", func(t *testing.T) {
		costRepo := newFakeCostRepo()
		uc := NewCreateCostUseCase(newFakeVehicleRepo(v), costRepo)

		out, err := uc.Execute(context.Background(), CreateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			Label:     "brake pads",
			Amount:    18_000,
			Category:  entity.CostCategoryRepair,
		})
		require.NoError(t, err)

		assert.Equal(t, v.ID, out.Cost.VehicleID)
		assert.False(t, out.Cost.IncurredAt.IsZero())
		assert.Len(t, costRepo.costs[v.ID], 1)
	})

	t.Run("defaults category to other", func(t *testing.T) {
		uc := NewCreateCostUseCase(newFakeVehicleRepo(v), newFakeCostRepo())

		out, err := uc.Execute(context.Background(), CreateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			Label:     "misc",
			Amount:    1_000,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.CostCategoryOther, out.Cost.Category)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewCreateCostUseCase(newFakeVehicleRepo(v), newFakeCostRepo())

		_, err := uc.Execute(context.Background(), CreateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			Label:     "refund",
			Amount:    -5_000,
			Category:  entity.CostCategoryOther,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrNegativeCostAmount)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateCostUseCase(newFakeVehicleRepo(v), newFakeCostRepo())

		_, err := uc.Execute(context.Background(), CreateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			Label:     "paint",
			Amount:    9_000,
			Category:  entity.CostCategory("cosmetic"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidCostCategory)
	})

	t.Run("vehicle of another merchant is not found", func(t *testing.T) {
		uc := NewCreateCostUseCase(newFakeVehicleRepo(v), newFakeCostRepo())

		_, err := uc.Execute(context.Background(), CreateCostInput{
			OwnerID:   uuid.New(),
			VehicleID: v.ID,
			Label:     "brake pads",
			Amount:    18_000,
			Category:  entity.CostCategoryRepair,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrVehicleNotFound)
	})
}

func TestUpdateCost(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "Opel", "Corsa", 2019, 500_000, nil, 60_000, entity.VehicleStatusInStock)

	t.Run("applies partial update", func(t *testing.T) {
		costRepo := newFakeCostRepo()
		c := entity.NewCostEntry(v.ID, "towing", 25_000, entity.CostCategoryTransport, time.Now())
		require.NoError(t, costRepo.Create(context.Background(), c))

		uc := NewUpdateCostUseCase(newFakeVehicleRepo(v), costRepo)
		amount := int64(27_500)
		out, err := uc.Execute(context.Background(), UpdateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			CostID:    c.ID,
			Amount:    &amount,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(27_500), out.Cost.Amount)
		assert.Equal(t, "towing", out.Cost.Label)
	})

	t.Run("unknown cost entry", func(t *testing.T) {
		uc := NewUpdateCostUseCase(newFakeVehicleRepo(v), newFakeCostRepo())
		_, err := uc.Execute(context.Background(), UpdateCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			CostID:    uuid.New(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrCostNotFound)
	})
}

func TestDeleteCost(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "Opel", "Corsa", 2019, 500_000, nil, 60_000, entity.VehicleStatusInStock)

	costRepo := newFakeCostRepo()
	c := entity.NewCostEntry(v.ID, "registration", 7_000, entity.CostCategoryAdmin, time.Now())
	require.NoError(t, costRepo.Create(context.Background(), c))

	uc := NewDeleteCostUseCase(newFakeVehicleRepo(v), costRepo)

	t.Run("cost of another vehicle is not found", func(t *testing.T) {
		other := entity.NewVehicle(ownerID, "Seat", "Ibiza", 2020, 600_000, nil, 30_000, entity.VehicleStatusInStock)
		uc2 := NewDeleteCostUseCase(newFakeVehicleRepo(v, other), costRepo)

		_, err := uc2.Execute(context.Background(), DeleteCostInput{
			OwnerID:   ownerID,
			VehicleID: other.ID,
			CostID:    c.ID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrCostNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteCostInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			CostID:    c.ID,
		})
		require.NoError(t, err)
		assert.Empty(t, costRepo.costs[v.ID])
	})
}

func TestListCosts(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "Opel", "Corsa", 2019, 500_000, nil, 60_000, entity.VehicleStatusInStock)

	costRepo := newFakeCostRepo()
	require.NoError(t, costRepo.Create(context.Background(), entity.NewCostEntry(v.ID, "towing", 25_000, entity.CostCategoryTransport, time.Now())))

	uc := NewListCostsUseCase(newFakeVehicleRepo(v), costRepo)

	out, err := uc.Execute(context.Background(), ListCostsInput{OwnerID: ownerID, VehicleID: v.ID})
	require.NoError(t, err)
	assert.Len(t, out.Costs, 1)
}
