// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetbook/backend/internal/application/adapter"
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
	"github.com/fleetbook/backend/internal/integration/persistence/model"
)

// photoRepository implements the adapter.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository instance.
func NewPhotoRepository(db *gorm.DB) adapter.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// Create creates a new photo reference in the database.
func (r *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoModel := model.PhotoFromEntity(photo)
	result := r.db.WithContext(ctx).Create(photoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByVehicle retrieves all photos for a vehicle ordered by position.
func (r *photoRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []model.PhotoModel
	result := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("position ASC, created_at ASC").
		Find(&photoModels)
	if result.Error != nil {
		return nil, result.Error
	}

	photos := make([]*entity.Photo, len(photoModels))
	for i := range photoModels {
		photos[i] = photoModels[i].ToEntity()
	}
	return photos, nil
}

// FindByIDAndVehicle retrieves one photo scoped to its vehicle.
func (r *photoRepository) FindByIDAndVehicle(ctx context.Context, id, vehicleID uuid.UUID) (*entity.Photo, error) {
	var photoModel model.PhotoModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND vehicle_id = ?", id, vehicleID).
		First(&photoModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPhotoNotFound
		}
		return nil, result.Error
	}
	return photoModel.ToEntity(), nil
}

// Delete removes a photo reference from the database.
func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PhotoModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
