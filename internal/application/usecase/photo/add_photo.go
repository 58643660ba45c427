// Package photo contains the vehicle photo reference use cases.
package photo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// AddPhotoInput represents the input for attaching a photo reference.
type AddPhotoInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
	URL       string
	Position  int
}

// AddPhotoOutput represents the output of attaching a photo reference.
type AddPhotoOutput struct {
	Photo *entity.Photo
}

// AddPhotoUseCase handles photo reference creation logic.
type AddPhotoUseCase struct {
	vehicleRepo adapter.VehicleRepository
	photoRepo   adapter.PhotoRepository
}

// NewAddPhotoUseCase creates a new AddPhotoUseCase instance.
func NewAddPhotoUseCase(vehicleRepo adapter.VehicleRepository, photoRepo adapter.PhotoRepository) *AddPhotoUseCase {
	return &AddPhotoUseCase{vehicleRepo: vehicleRepo, photoRepo: photoRepo}
}

// Execute attaches a photo URL to one of the merchant's vehicles. Binary
// storage lives elsewhere; only the reference is kept here.
func (uc *AddPhotoUseCase) Execute(ctx context.Context, input AddPhotoInput) (*AddPhotoOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	parsed, err := url.Parse(input.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, domainerror.NewPhotoError(
			domainerror.ErrCodeInvalidPhotoURL,
			"photo url must be absolute",
			domainerror.ErrInvalidPhotoURL,
		)
	}

	photo := entity.NewPhoto(vehicle.ID, input.URL, input.Position)

	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return &AddPhotoOutput{Photo: photo}, nil
}
