// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table in the database.
// Monetary columns hold integer minor currency units.
type VehicleModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Make          string     `gorm:"type:varchar(100);not null"`
	Model         string     `gorm:"type:varchar(100);not null"`
	Year          int        `gorm:"not null"`
	PurchasePrice int64      `gorm:"not null"`
	SalePrice     *int64     `gorm:""`
	Mileage       int        `gorm:"not null;default:0"`
	Status        string     `gorm:"type:varchar(20);not null;default:'in_stock';index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
	Owner         *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Make:          m.Make,
		Model:         m.Model,
		Year:          m.Year,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		Mileage:       m.Mileage,
		Status:        entity.VehicleStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(vehicle *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:            vehicle.ID,
		OwnerID:       vehicle.OwnerID,
		Make:          vehicle.Make,
		Model:         vehicle.Model,
		Year:          vehicle.Year,
		PurchasePrice: vehicle.PurchasePrice,
		SalePrice:     vehicle.SalePrice,
		Mileage:       vehicle.Mileage,
		Status:        string(vehicle.Status),
		CreatedAt:     vehicle.CreatedAt,
		UpdatedAt:     vehicle.UpdatedAt,
	}
}
