// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetbook/backend/internal/domain/entity"
)

// CreateCostRequest represents the request body for cost entry creation.
type CreateCostRequest struct {
	Label      string `json:"label" binding:"required,min=1,max=255"`
	Amount     int64  `json:"amount" binding:"min=0"`
	Category   string `json:"category,omitempty" binding:"omitempty,oneof=transport repair admin other"`
	IncurredAt string `json:"incurredAt,omitempty"`
}

// UpdateCostRequest represents the request body for a partial cost entry update.
type UpdateCostRequest struct {
	Label      *string `json:"label,omitempty" binding:"omitempty,min=1,max=255"`
	Amount     *int64  `json:"amount,omitempty"`
	Category   *string `json:"category,omitempty" binding:"omitempty,oneof=transport repair admin other"`
	IncurredAt *string `json:"incurredAt,omitempty"`
}

// CostResponse represents a single cost entry in API responses.
type CostResponse struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicleId"`
	Label      string    `json:"label"`
	Amount     int64     `json:"amount"`
	Category   string    `json:"category"`
	IncurredAt time.Time `json:"incurredAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListCostsResponse represents the response for cost ledger listing.
type ListCostsResponse struct {
	Costs []CostResponse `json:"costs"`
	Total int            `json:"total"`
}

// ToCostResponse converts a CostEntry entity to a CostResponse DTO.
func ToCostResponse(cost *entity.CostEntry) CostResponse {
	return CostResponse{
		ID:         cost.ID.String(),
		VehicleID:  cost.VehicleID.String(),
		Label:      cost.Label,
		Amount:     cost.Amount,
		Category:   string(cost.Category),
		IncurredAt: cost.IncurredAt,
		CreatedAt:  cost.CreatedAt,
	}
}

// ToCostResponses converts a slice of CostEntry entities to DTOs.
func ToCostResponses(costs []*entity.CostEntry) []CostResponse {
	out := make([]CostResponse, len(costs))
	for i, c := range costs {
		out[i] = ToCostResponse(c)
	}
	return out
}
