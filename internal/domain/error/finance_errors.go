// Package error defines domain-specific errors for the Fleetbook application.
package error

import "errors"

// Financial aggregation errors. These indicate a caller defect (wrong
// filtering upstream) and must propagate as faults, never be swallowed.
var (
	// ErrCostVehicleMismatch is returned when a cost entry references a
	// different vehicle than the one being totaled.
	ErrCostVehicleMismatch = errors.New("cost entry does not belong to vehicle")

	// ErrNegativeAmount is returned when a monetary input is negative.
	ErrNegativeAmount = errors.New("monetary amount must not be negative")

	// ErrInvalidPeriod is returned when the dashboard period filter is unknown.
	ErrInvalidPeriod = errors.New("invalid dashboard period")
)

// FinanceErrorCode defines error codes for financial aggregation errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	ErrCodeCostVehicleMismatch FinanceErrorCode = "FIN-010001"
	ErrCodeNegativeAmount      FinanceErrorCode = "FIN-010002"
	ErrCodeInvalidPeriod       FinanceErrorCode = "FIN-010003"
)

// FinanceError represents a financial aggregation error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
