// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fleetbook/backend/internal/domain/entity"
	"github.com/fleetbook/backend/internal/domain/finance"
)

// CreateVehicleRequest represents the request body for vehicle creation.
// Monetary fields are integer minor currency units.
type CreateVehicleRequest struct {
	Make          string `json:"make" binding:"required,min=1,max=100"`
	Model         string `json:"model" binding:"required,min=1,max=100"`
	Year          int    `json:"year" binding:"required"`
	PurchasePrice int64  `json:"purchasePrice" binding:"min=0"`
	SalePrice     *int64 `json:"salePrice,omitempty"`
	Mileage       int    `json:"mileage" binding:"min=0"`
	Status        string `json:"status,omitempty" binding:"omitempty,oneof=in_stock in_preparation sold"`
}

// UpdateVehicleRequest represents the request body for a partial vehicle update.
type UpdateVehicleRequest struct {
	Make          *string `json:"make,omitempty" binding:"omitempty,min=1,max=100"`
	Model         *string `json:"model,omitempty" binding:"omitempty,min=1,max=100"`
	Year          *int    `json:"year,omitempty"`
	PurchasePrice *int64  `json:"purchasePrice,omitempty"`
	SalePrice     *int64  `json:"salePrice,omitempty"`
	ClearSale     bool    `json:"clearSalePrice,omitempty"`
	Mileage       *int    `json:"mileage,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=in_stock in_preparation sold"`
}

// TotalsResponse represents the derived financial figures of a vehicle.
type TotalsResponse struct {
	TotalCost     int64  `json:"totalCost"`
	VariableCosts int64  `json:"variableCosts"`
	Margin        *int64 `json:"margin"`
}

// VehicleResponse represents a single vehicle in API responses.
type VehicleResponse struct {
	ID            string         `json:"id"`
	Make          string         `json:"make"`
	Model         string         `json:"model"`
	Year          int            `json:"year"`
	PurchasePrice int64          `json:"purchasePrice"`
	SalePrice     *int64         `json:"salePrice"`
	Mileage       int            `json:"mileage"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Totals        TotalsResponse `json:"totals"`
}

// VehicleDetailResponse represents a vehicle with its ledger and photos.
type VehicleDetailResponse struct {
	VehicleResponse
	Costs  []CostResponse  `json:"costs"`
	Photos []PhotoResponse `json:"photos"`
}

// ListVehiclesResponse represents the response for vehicle listing.
type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

// ToTotalsResponse converts finance totals to a TotalsResponse DTO.
func ToTotalsResponse(totals *finance.Totals) TotalsResponse {
	return TotalsResponse{
		TotalCost:     totals.TotalCost,
		VariableCosts: totals.VariableCosts,
		Margin:        totals.Margin,
	}
}

// ToVehicleResponse converts a Vehicle entity and its totals to a VehicleResponse DTO.
func ToVehicleResponse(vehicle *entity.Vehicle, totals *finance.Totals) VehicleResponse {
	return VehicleResponse{
		ID:            vehicle.ID.String(),
		Make:          vehicle.Make,
		Model:         vehicle.Model,
		Year:          vehicle.Year,
		PurchasePrice: vehicle.PurchasePrice,
		SalePrice:     vehicle.SalePrice,
		Mileage:       vehicle.Mileage,
		Status:        string(vehicle.Status),
		CreatedAt:     vehicle.CreatedAt,
		UpdatedAt:     vehicle.UpdatedAt,
		Totals:        ToTotalsResponse(totals),
	}
}
