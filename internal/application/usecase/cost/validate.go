// Package cost contains the cost ledger use cases.
package cost

import (
	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// validateCostFields checks field-level constraints shared by create and
// update. Amount is a count of minor currency units.
func validateCostFields(label string, amount int64, category entity.CostCategory) error {
	if label == "" {
		return domainerror.NewCostError(
			domainerror.ErrCodeMissingCostLabel,
			"cost label is required",
			domainerror.ErrMissingCostLabel,
		)
	}
	if amount < 0 {
		return domainerror.NewCostError(
			domainerror.ErrCodeNegativeCostAmount,
			"cost amount must not be negative",
			domainerror.ErrNegativeCostAmount,
		)
	}
	if !category.IsValid() {
		return domainerror.NewCostError(
			domainerror.ErrCodeInvalidCostCategory,
			"unknown cost category",
			domainerror.ErrInvalidCostCategory,
		)
	}
	return nil
}
