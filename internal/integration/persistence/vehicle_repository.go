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

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create creates a new vehicle in the database.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	result := r.db.WithContext(ctx).Create(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindOwned retrieves a vehicle by ID scoped to its owner. A vehicle of
// another merchant behaves like a missing row.
func (r *vehicleRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*entity.Vehicle, error) {
	var vehicleModel model.VehicleModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&vehicleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVehicleNotFound
		}
		return nil, result.Error
	}
	return vehicleModel.ToEntity(), nil
}

// FindOwnedVehicles retrieves the owner's vehicles matching the filter,
// newest first.
func (r *vehicleRepository) FindOwnedVehicles(ctx context.Context, ownerID uuid.UUID, filter entity.VehicleFilter) ([]*entity.Vehicle, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Make != "" {
		query = query.Where("make LIKE ?", "%"+filter.Make+"%")
	}

	var vehicleModels []model.VehicleModel
	result := query.Order("created_at DESC").Find(&vehicleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	vehicles := make([]*entity.Vehicle, len(vehicleModels))
	for i := range vehicleModels {
		vehicles[i] = vehicleModels[i].ToEntity()
	}
	return vehicles, nil
}

// Update updates an existing vehicle in the database.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	// Save alone skips fields going back to NULL, such as a withdrawn sale price.
	result := r.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", vehicleModel.ID).
		Select("*").
		Omit("id", "owner_id", "created_at").
		Updates(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a vehicle from the database. Cost entries and photos go
// with it through the cascade constraint.
func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.VehicleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
