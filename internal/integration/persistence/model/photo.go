// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// PhotoModel represents the photos table in the database.
type PhotoModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID     `gorm:"type:uuid;not null;index"`
	URL       string        `gorm:"type:text;not null"`
	Position  int           `gorm:"not null;default:0"`
	CreatedAt time.Time     `gorm:"not null"`
	Vehicle   *VehicleModel `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PhotoModel.
func (PhotoModel) TableName() string {
	return "photos"
}

// ToEntity converts a PhotoModel to a domain Photo entity.
func (m *PhotoModel) ToEntity() *entity.Photo {
	return &entity.Photo{
		ID:        m.ID,
		VehicleID: m.VehicleID,
		URL:       m.URL,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

// PhotoFromEntity creates a PhotoModel from a domain Photo entity.
func PhotoFromEntity(photo *entity.Photo) *PhotoModel {
	return &PhotoModel{
		ID:        photo.ID,
		VehicleID: photo.VehicleID,
		URL:       photo.URL,
		Position:  photo.Position,
		CreatedAt: photo.CreatedAt,
	}
}
