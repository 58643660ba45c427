// Package error defines domain-specific errors for the Fleetbook application.
package error

import "errors"

// Cost ledger domain errors.
var (
	// ErrCostNotFound is returned when a cost entry is not found for the vehicle.
	ErrCostNotFound = errors.New("cost entry not found")

	// ErrInvalidCostCategory is returned when the cost category is not a known kind.
	ErrInvalidCostCategory = errors.New("invalid cost category")

	// ErrNegativeCostAmount is returned when the cost amount is negative.
	ErrNegativeCostAmount = errors.New("cost amount must not be negative")

	// ErrMissingCostLabel is returned when the cost label is empty.
	ErrMissingCostLabel = errors.New("cost label is required")
)

// CostErrorCode defines error codes for cost ledger errors.
// Format: COST-XXYYYY where XX is category and YYYY is specific error.
type CostErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCostCategory CostErrorCode = "COST-010001"
	ErrCodeNegativeCostAmount  CostErrorCode = "COST-010002"
	ErrCodeMissingCostLabel    CostErrorCode = "COST-010003"

	// Lookup errors (02XXXX)
	ErrCodeCostNotFound CostErrorCode = "COST-020001"
)

// CostError represents a cost ledger error with code and message.
type CostError struct {
	Code    CostErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CostError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CostError) Unwrap() error {
	return e.Err
}

// NewCostError creates a new CostError with the given code and message.
func NewCostError(code CostErrorCode, message string, err error) *CostError {
	return &CostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
