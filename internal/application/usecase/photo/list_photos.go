// Package photo contains the vehicle photo reference use cases.
package photo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// ListPhotosInput represents the input for photo listing.
type ListPhotosInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
}

// ListPhotosOutput represents the output of photo listing.
type ListPhotosOutput struct {
	Photos []*entity.Photo
}

// ListPhotosUseCase handles photo listing logic.
type ListPhotosUseCase struct {
	vehicleRepo adapter.VehicleRepository
	photoRepo   adapter.PhotoRepository
}

// NewListPhotosUseCase creates a new ListPhotosUseCase instance.
func NewListPhotosUseCase(vehicleRepo adapter.VehicleRepository, photoRepo adapter.PhotoRepository) *ListPhotosUseCase {
	return &ListPhotosUseCase{vehicleRepo: vehicleRepo, photoRepo: photoRepo}
}

// Execute lists the photos of one of the merchant's vehicles by position.
func (uc *ListPhotosUseCase) Execute(ctx context.Context, input ListPhotosInput) (*ListPhotosOutput, error) {
	vehicle, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	photos, err := uc.photoRepo.FindByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}

	return &ListPhotosOutput{Photos: photos}, nil
}
