// Package photo contains the vehicle photo reference use cases.
package photo

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

func TestAddPhoto(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "BMW", "118i", 2020, 1_200_000, nil, 35_000, entity.VehicleStatusInStock)

	t.Run("attaches a url reference", func(t *testing.T) {
		photoRepo := newFakePhotoRepo()
		uc := NewAddPhotoUseCase(newFakeVehicleRepo(v), photoRepo)

		out, err := uc.Execute(context.Background(), AddPhotoInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			URL:       "https://cdn.example.com/bmw-front.jpg",
			Position:  0,
		})
		require.NoError(t, err)

		assert.Equal(t, v.ID, out.Photo.VehicleID)
		assert.Len(t, photoRepo.photos[v.ID], 1)
	})

	t.Run("rejects relative url", func(t *testing.T) {
		uc := NewAddPhotoUseCase(newFakeVehicleRepo(v), newFakePhotoRepo())

		_, err := uc.Execute(context.Background(), AddPhotoInput{
			OwnerID:   ownerID,
			VehicleID: v.ID,
			URL:       "/uploads/bmw.jpg",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrInvalidPhotoURL)
	})

	t.Run("vehicle of another merchant is not found", func(t *testing.T) {
		uc := NewAddPhotoUseCase(newFakeVehicleRepo(v), newFakePhotoRepo())

		_, err := uc.Execute(context.Background(), AddPhotoInput{
			OwnerID:   uuid.New(),
			VehicleID: v.ID,
			URL:       "https://cdn.example.com/bmw-front.jpg",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrVehicleNotFound)
	})
}

func TestDeletePhoto(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "BMW", "118i", 2020, 1_200_000, nil, 35_000, entity.VehicleStatusInStock)

	photoRepo := newFakePhotoRepo()
	p := entity.NewPhoto(v.ID, "https://cdn.example.com/bmw-side.jpg", 1)
	require.NoError(t, photoRepo.Create(context.Background(), p))

	uc := NewDeletePhotoUseCase(newFakeVehicleRepo(v), photoRepo)

	t.Run("unknown photo", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeletePhotoInput{OwnerID: ownerID, VehicleID: v.ID, PhotoID: uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrPhotoNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeletePhotoInput{OwnerID: ownerID, VehicleID: v.ID, PhotoID: p.ID})
		require.NoError(t, err)
		assert.Empty(t, photoRepo.photos[v.ID])
	})
}

func TestListPhotos(t *testing.T) {
	ownerID := uuid.New()
	v := entity.NewVehicle(ownerID, "BMW", "118i", 2020, 1_200_000, nil, 35_000, entity.VehicleStatusInStock)

	photoRepo := newFakePhotoRepo()
	require.NoError(t, photoRepo.Create(context.Background(), entity.NewPhoto(v.ID, "https://cdn.example.com/a.jpg", 0)))
	require.NoError(t, photoRepo.Create(context.Background(), entity.NewPhoto(v.ID, "https://cdn.example.com/b.jpg", 1)))

	uc := NewListPhotosUseCase(newFakeVehicleRepo(v), photoRepo)

	out, err := uc.Execute(context.Background(), ListPhotosInput{OwnerID: ownerID, VehicleID: v.ID})
	require.NoError(t, err)
	assert.Len(t, out.Photos, 2)
}
