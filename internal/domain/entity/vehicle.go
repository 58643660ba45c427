// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus represents where a vehicle sits in the resale pipeline.
type VehicleStatus string

const (
	VehicleStatusInStock       VehicleStatus = "in_stock"
	VehicleStatusInPreparation VehicleStatus = "in_preparation"
	VehicleStatusSold          VehicleStatus = "sold"
)

// IsValid reports whether the status is one of the known pipeline states.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusInStock, VehicleStatusInPreparation, VehicleStatusSold:
		return true
	}
	return false
}

// Vehicle represents one fleet item acquired for resale.
// All monetary fields are integer minor currency units (cents).
type Vehicle struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Make          string
	Model         string
	Year          int
	PurchasePrice int64
	SalePrice     *int64 // nil until a sale price is quoted
	Mileage       int
	Status        VehicleStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewVehicle creates a new Vehicle entity owned by the given merchant.
func NewVehicle(
	ownerID uuid.UUID,
	make, model string,
	year int,
	purchasePrice int64,
	salePrice *int64,
	mileage int,
	status VehicleStatus,
) *Vehicle {
	now := time.Now().UTC()
	return &Vehicle{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Make:          make,
		Model:         model,
		Year:          year,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Mileage:       mileage,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// VehicleWithCosts represents a vehicle together with its cost ledger.
type VehicleWithCosts struct {
	Vehicle *Vehicle
	Costs   []*CostEntry
}

// VehicleFilter holds the optional owner-scoped listing filters.
type VehicleFilter struct {
	Status *VehicleStatus
	Make   string // substring match on make
}
