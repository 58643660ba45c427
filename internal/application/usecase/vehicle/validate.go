// Package vehicle contains the fleet item use cases.
package vehicle

import (
	"time"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

const minVehicleYear = 1900

// validateVehicleFields checks field-level constraints shared by create and
// update. Monetary values are minor currency units and must not be negative.
func validateVehicleFields(make, model string, year int, purchasePrice int64, salePrice *int64, mileage int, status entity.VehicleStatus) error {
	if make == "" || model == "" {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeMissingVehicleFields,
			"make and model are required",
			domainerror.ErrMissingVehicleFields,
		)
	}
	if year < minVehicleYear || year > time.Now().Year()+1 {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidVehicleYear,
			"vehicle year is out of range",
			domainerror.ErrInvalidVehicleYear,
		)
	}
	if purchasePrice < 0 || (salePrice != nil && *salePrice < 0) {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeNegativePrice,
			"prices must not be negative",
			domainerror.ErrNegativePrice,
		)
	}
	if mileage < 0 {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeNegativeMileage,
			"mileage must not be negative",
			domainerror.ErrNegativeMileage,
		)
	}
	if !status.IsValid() {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidVehicleStatus,
			"unknown vehicle status",
			domainerror.ErrInvalidVehicleStatus,
		)
	}
	return nil
}
