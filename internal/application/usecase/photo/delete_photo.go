// Package photo contains the vehicle photo reference use cases.
package photo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/application/adapter"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// DeletePhotoInput represents the input for photo reference deletion.
type DeletePhotoInput struct {
	OwnerID   uuid.UUID
	VehicleID uuid.UUID
	PhotoID   uuid.UUID
}

// DeletePhotoOutput represents the output of photo reference deletion.
type DeletePhotoOutput struct {
	Message string
}

// DeletePhotoUseCase handles photo reference deletion logic.
type DeletePhotoUseCase struct {
	vehicleRepo adapter.VehicleRepository
	photoRepo   adapter.PhotoRepository
}

// NewDeletePhotoUseCase creates a new DeletePhotoUseCase instance.
func NewDeletePhotoUseCase(vehicleRepo adapter.VehicleRepository, photoRepo adapter.PhotoRepository) *DeletePhotoUseCase {
	return &DeletePhotoUseCase{vehicleRepo: vehicleRepo, photoRepo: photoRepo}
}

// Execute removes a photo reference from the merchant's vehicle.
func (uc *DeletePhotoUseCase) Execute(ctx context.Context, input DeletePhotoInput) (*DeletePhotoOutput, error) {
	if _, err := uc.vehicleRepo.FindOwned(ctx, input.VehicleID, input.OwnerID); err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			domainerror.ErrVehicleNotFound,
		)
	}

	photo, err := uc.photoRepo.FindByIDAndVehicle(ctx, input.PhotoID, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewPhotoError(
			domainerror.ErrCodePhotoNotFound,
			"photo not found",
			domainerror.ErrPhotoNotFound,
		)
	}

	if err := uc.photoRepo.Delete(ctx, photo.ID); err != nil {
		return nil, fmt.Errorf("failed to delete photo: %w", err)
	}

	return &DeletePhotoOutput{Message: "photo deleted"}, nil
}
