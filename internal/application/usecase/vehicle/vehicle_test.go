// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
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

func (r *fakeVehicleRepo) FindOwnedVehicles(_ context.Context, ownerID uuid.UUID, filter entity.VehicleFilter) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		out = append(out, v)
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

type fakePhotoRepo struct {
	photos map[uuid.UUID][]*entity.Photo
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[uuid.UUID][]*entity.Photo)}
}

func (r *fakePhotoRepo) Create(_ context.Context, p *entity.Photo) error {
	r.photos[p.VehicleID] = append(r.photos[p.VehicleID], p)
	return nil
}

func (r *fakePhotoRepo) FindByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*entity.Photo, error) {
	return r.photos[vehicleID], nil
}

func (r *fakePhotoRepo) FindByIDAndVehicle(_ context.Context, id, vehicleID uuid.UUID) (*entity.Photo, error) {
	for _, p := range r.photos[vehicleID] {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakePhotoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for vid, ps := range r.photos {
		for i, p := range ps {
			if p.ID == id {
				r.photos[vid] = append(ps[:i], ps[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateVehicle(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates with defaults and totals", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		uc := NewCreateVehicleUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateVehicleInput{
			OwnerID:       ownerID,
			Make:          "Renault",
			Model:         "Clio",
			Year:          2019,
			PurchasePrice: 550_000,
			Mileage:       82_000,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.VehicleStatusInStock, out.Vehicle.Status)
		assert.Equal(t, ownerID, out.Vehicle.OwnerID)
		assert.Equal(t, int64(550_000), out.Totals.TotalCost)
		assert.Nil(t, out.Totals.Margin)
		assert.Len(t, repo.vehicles, 1)
	})

	t.Run("rejects missing make", func(t *testing.T) {
		uc := NewCreateVehicleUseCase(newFakeVehicleRepo())

		_, err := uc.Execute(context.Background(), CreateVehicleInput{
			OwnerID: ownerID,
			Model:   "Clio",
			Year:    2019,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrMissingVehicleFields)
	})

	t.Run("rejects negative sale price", func(t *testing.T) {
		uc := NewCreateVehicleUseCase(newFakeVehicleRepo())

		_, err := uc.Execute(context.Background(), CreateVehicleInput{
			OwnerID:       ownerID,
			Make:          "Renault",
			Model:         "Clio",
			Year:          2019,
			PurchasePrice: 550_000,
			SalePrice:     int64Ptr(-1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrNegativePrice)
	})
}

func TestListVehicles(t *testing.T) {
	ownerID := uuid.New()
	otherOwner := uuid.New()

	repo := newFakeVehicleRepo()
	costRepo := newFakeCostRepo()

	mine := entity.NewVehicle(ownerID, "Peugeot", "208", 2020, 700_000, int64Ptr(950_000), 40_000, entity.VehicleStatusInStock)
	sold := entity.NewVehicle(ownerID, "Fiat", "Panda", 2015, 300_000, int64Ptr(420_000), 110_000, entity.VehicleStatusSold)
	foreign := entity.NewVehicle(otherOwner, "Audi", "A3", 2021, 1_500_000, nil, 20_000, entity.VehicleStatusInStock)
	require.NoError(t, repo.Create(context.Background(), mine))
	require.NoError(t, repo.Create(context.Background(), sold))
	require.NoError(t, repo.Create(context.Background(), foreign))

	require.NoError(t, costRepo.Create(context.Background(), entity.NewCostEntry(mine.ID, "tires", 40_000, entity.CostCategoryRepair, mine.CreatedAt)))

	uc := NewListVehiclesUseCase(repo, costRepo)

	t.Run("lists owner vehicles with totals", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListVehiclesInput{OwnerID: ownerID})
		require.NoError(t, err)
		require.Len(t, out.Vehicles, 2)

		for _, vt := range out.Vehicles {
			if vt.Vehicle.ID == mine.ID {
				assert.Equal(t, int64(740_000), vt.Totals.TotalCost)
				require.NotNil(t, vt.Totals.Margin)
				assert.Equal(t, int64(210_000), *vt.Totals.Margin)
			}
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListVehiclesInput{OwnerID: ownerID, Status: "sold"})
		require.NoError(t, err)
		require.Len(t, out.Vehicles, 1)
		assert.Equal(t, sold.ID, out.Vehicles[0].Vehicle.ID)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListVehiclesInput{OwnerID: ownerID, Status: "scrapped"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidVehicleStatus)
	})
}

func TestGetVehicle(t *testing.T) {
	ownerID := uuid.New()

	repo := newFakeVehicleRepo()
	costRepo := newFakeCostRepo()
	photoRepo := newFakePhotoRepo()

	v := entity.NewVehicle(ownerID, "Toyota", "Yaris", 2018, 600_000, nil, 95_000, entity.VehicleStatusInPreparation)
	require.NoError(t, repo.Create(context.Background(), v))
	require.NoError(t, costRepo.Create(context.Background(), entity.NewCostEntry(v.ID, "transport", 15_000, entity.CostCategoryTransport, v.CreatedAt)))
	require.NoError(t, photoRepo.Create(context.Background(), entity.NewPhoto(v.ID, "https://cdn.example.com/yaris.jpg", 0)))

	uc := NewGetVehicleUseCase(repo, costRepo, photoRepo)

	t.Run("returns vehicle with ledger, photos and totals", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetVehicleInput{OwnerID: ownerID, VehicleID: v.ID})
		require.NoError(t, err)

		assert.Equal(t, v.ID, out.Vehicle.ID)
		assert.Len(t, out.Costs, 1)
		assert.Len(t, out.Photos, 1)
		assert.Equal(t, int64(615_000), out.Totals.TotalCost)
		assert.Nil(t, out.Totals.Margin)
	})

	t.Run("hides other merchants vehicles", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetVehicleInput{OwnerID: uuid.New(), VehicleID: v.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrVehicleNotFound)
	})
}

func TestUpdateVehicle(t *testing.T) {
	ownerID := uuid.New()

	t.Run("marks vehicle sold and recomputes margin", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		costRepo := newFakeCostRepo()
		v := entity.NewVehicle(ownerID, "Dacia", "Sandero", 2021, 800_000, nil, 30_000, entity.VehicleStatusInStock)
		require.NoError(t, repo.Create(context.Background(), v))
		require.NoError(t, costRepo.Create(context.Background(), entity.NewCostEntry(v.ID, "detailing", 12_000, entity.CostCategoryOther, v.CreatedAt)))

		uc := NewUpdateVehicleUseCase(repo, costRepo)
		sold := entity.VehicleStatusSold
		out, err := uc.Execute(context.Background(), UpdateVehicleInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			SalePrice: int64Ptr(1_000_000),
			Status:    &sold,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.VehicleStatusSold, out.Vehicle.Status)
		require.NotNil(t, out.Totals.Margin)
		assert.Equal(t, int64(188_000), *out.Totals.Margin)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		v := entity.NewVehicle(ownerID, "Dacia", "Sandero", 2021, 800_000, nil, 30_000, entity.VehicleStatusInStock)
		require.NoError(t, repo.Create(context.Background(), v))

		uc := NewUpdateVehicleUseCase(repo, newFakeCostRepo())
		bad := entity.VehicleStatus("auctioned")
		_, err := uc.Execute(context.Background(), UpdateVehicleInput{OwnerID: ownerID, VehicleID: v.ID, Status: &bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidVehicleStatus)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		uc := NewUpdateVehicleUseCase(newFakeVehicleRepo(), newFakeCostRepo())
		_, err := uc.Execute(context.Background(), UpdateVehicleInput{OwnerID: ownerID, VehicleID: uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrVehicleNotFound)
	})
}

func TestDeleteVehicle(t *testing.T) {
	ownerID := uuid.New()

	repo := newFakeVehicleRepo()
	v := entity.NewVehicle(ownerID, "Ford", "Fiesta", 2017, 450_000, nil, 70_000, entity.VehicleStatusInStock)
	require.NoError(t, repo.Create(context.Background(), v))

	uc := NewDeleteVehicleUseCase(repo)

	t.Run("other merchant cannot delete", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteVehicleInput{OwnerID: uuid.New(), VehicleID: v.ID})
		require.Error(t, err)
		assert.Len(t, repo.vehicles, 1)
	})

	t.Run("owner deletes", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteVehicleInput{OwnerID: ownerID, VehicleID: v.ID})
		require.NoError(t, err)
		assert.Empty(t, repo.vehicles)
	})
}
