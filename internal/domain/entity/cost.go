// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CostCategory classifies an incurred expense.
type CostCategory string

const (
	CostCategoryTransport CostCategory = "transport"
	CostCategoryRepair    CostCategory = "repair"
	CostCategoryAdmin     CostCategory = "admin"
	CostCategoryOther     CostCategory = "other"
)

// IsValid reports whether the category is one of the known kinds.
func (c CostCategory) IsValid() bool {
	switch c {
	case CostCategoryTransport, CostCategoryRepair, CostCategoryAdmin, CostCategoryOther:
		return true
	}
	return false
}

// CostEntry represents one incurred expense tied to a vehicle.
// Amount is an integer count of minor currency units (cents).
type CostEntry struct {
	ID         uuid.UUID
	VehicleID  uuid.UUID
	Label      string
	Amount     int64
	Category   CostCategory
	IncurredAt time.Time
	CreatedAt  time.Time
}

// NewCostEntry creates a new CostEntry entity for the given vehicle.
func NewCostEntry(vehicleID uuid.UUID, label string, amount int64, category CostCategory, incurredAt time.Time) *CostEntry {
	return &CostEntry{
		ID:         uuid.New(),
		VehicleID:  vehicleID,
		Label:      label,
		Amount:     amount,
		Category:   category,
		IncurredAt: incurredAt,
		CreatedAt:  time.Now().UTC(),
	}
}
