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

// costRepository implements the adapter.CostRepository interface.
type costRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository instance.
func NewCostRepository(db *gorm.DB) adapter.CostRepository {
	return &costRepository{
		db: db,
	}
}

// Create creates a new cost entry in the database.
func (r *costRepository) Create(ctx context.Context, cost *entity.CostEntry) error {
	costModel := model.CostFromEntity(cost)
	result := r.db.WithContext(ctx).Create(costModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByVehicle retrieves all cost entries for a vehicle, most recently
// incurred first.
func (r *costRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.CostEntry, error) {
	var costModels []model.CostModel
	result := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("incurred_at DESC, created_at DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}

	costs := make([]*entity.CostEntry, len(costModels))
	for i := range costModels {
		costs[i] = costModels[i].ToEntity()
	}
	return costs, nil
}

// FindByVehicles retrieves the cost entries of several vehicles in one query,
// keyed by vehicle ID.
func (r *costRepository) FindByVehicles(ctx context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID][]*entity.CostEntry, error) {
	costsByVehicle := make(map[uuid.UUID][]*entity.CostEntry)
	if len(vehicleIDs) == 0 {
		return costsByVehicle, nil
	}

	var costModels []model.CostModel
	result := r.db.WithContext(ctx).
		Where("vehicle_id IN ?", vehicleIDs).
		Order("incurred_at DESC, created_at DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range costModels {
		cost := costModels[i].ToEntity()
		costsByVehicle[cost.VehicleID] = append(costsByVehicle[cost.VehicleID], cost)
	}
	return costsByVehicle, nil
}

// FindByIDAndVehicle retrieves one cost entry scoped to its vehicle.
func (r *costRepository) FindByIDAndVehicle(ctx context.Context, id, vehicleID uuid.UUID) (*entity.CostEntry, error) {
	var costModel model.CostModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND vehicle_id = ?", id, vehicleID).
		First(&costModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCostNotFound
		}
		return nil, result.Error
	}
	return costModel.ToEntity(), nil
}

// Update updates an existing cost entry in the database.
func (r *costRepository) Update(ctx context.Context, cost *entity.CostEntry) error {
	costModel := model.CostFromEntity(cost)
	result := r.db.WithContext(ctx).
		Model(&model.CostModel{}).
		Where("id = ?", costModel.ID).
		Select("*").
		Omit("id", "vehicle_id", "created_at").
		Updates(costModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a cost entry from the database.
func (r *costRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
