// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// CostModel represents the cost_entries table in the database.
type CostModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	VehicleID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Label      string        `gorm:"type:varchar(255);not null"`
	Amount     int64         `gorm:"not null"`
	Category   string        `gorm:"type:varchar(20);not null;default:'other'"`
	IncurredAt time.Time     `gorm:"not null"`
	CreatedAt  time.Time     `gorm:"not null"`
	Vehicle    *VehicleModel `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the CostModel.
func (CostModel) TableName() string {
	return "cost_entries"
}

// ToEntity converts a CostModel to a domain CostEntry entity.
func (m *CostModel) ToEntity() *entity.CostEntry {
	return &entity.CostEntry{
		ID:         m.ID,
		VehicleID:  m.VehicleID,
		Label:      m.Label,
		Amount:     m.Amount,
		Category:   entity.CostCategory(m.Category),
		IncurredAt: m.IncurredAt,
		CreatedAt:  m.CreatedAt,
	}
}

// CostFromEntity creates a CostModel from a domain CostEntry entity.
func CostFromEntity(cost *entity.CostEntry) *CostModel {
	return &CostModel{
		ID:         cost.ID,
		VehicleID:  cost.VehicleID,
		Label:      cost.Label,
		Amount:     cost.Amount,
		Category:   string(cost.Category),
		IncurredAt: cost.IncurredAt,
		CreatedAt:  cost.CreatedAt,
	}
}
