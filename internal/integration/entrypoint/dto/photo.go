// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// AddPhotoRequest represents the request body for attaching a photo reference.
type AddPhotoRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Position int    `json:"position,omitempty" binding:"omitempty,min=0"`
}

// PhotoResponse represents a single photo reference in API responses.
type PhotoResponse struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicleId"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListPhotosResponse represents the response for photo listing.
type ListPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
	Total  int             `json:"total"`
}

// ToPhotoResponse converts a Photo entity to a PhotoResponse DTO.
func ToPhotoResponse(photo *entity.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        photo.ID.String(),
		VehicleID: photo.VehicleID.String(),
		URL:       photo.URL,
		Position:  photo.Position,
		CreatedAt: photo.CreatedAt,
	}
}

// ToPhotoResponses converts a slice of Photo entities to DTOs.
func ToPhotoResponses(photos []*entity.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = ToPhotoResponse(p)
	}
	return out
}
